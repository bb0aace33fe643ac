package queue_tasks

import (
	"context"
	"encoding/json"

	"smartedu.io/infrastructure/biometric"
	"smartedu.io/infrastructure/logger"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

var HandleGalleryRefreshTaskName mq_types.Queues = "gallery_refresh"

type GalleryRefreshPayload struct {
	Reason string
	mq_types.BasePayload
}

// HandleGalleryRefreshTask rebuilds the face gallery from every student with
// a reference photo on record.
func HandleGalleryRefreshTask(ctx context.Context, t *asynq.Task) error {
	var payload GalleryRefreshPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling gallery refresh queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	if err := biometric.FaceService.RefreshGallery(); err != nil {
		return err
	}
	logger.Info("face gallery refreshed", logger.LoggerOptions{
		Key:  "reason",
		Data: payload.Reason,
	}, logger.LoggerOptions{
		Key:  "gallerySize",
		Data: biometric.FaceService.Gallery.Size(),
	})
	return nil
}
