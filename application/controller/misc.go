package controller

import (
	"encoding/json"
	"net/http"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/interfaces"
	"smartedu.io/application/repository"
	"smartedu.io/infrastructure/biometric"
	"smartedu.io/infrastructure/database/repository/cache"
	"smartedu.io/infrastructure/logger"
	messagequeue "smartedu.io/infrastructure/message_queue"
	queue_tasks "smartedu.io/infrastructure/message_queue/tasks"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"smartedu.io/infrastructure/ml"
	server_response "smartedu.io/infrastructure/serverResponse"
	"smartedu.io/infrastructure/validator"
)

func TriggerBackup(ctx *interfaces.ApplicationContext[dto.BackupRequestDTO]) {
	note := ""
	if ctx.Body != nil && ctx.Body.Note != nil {
		note = *ctx.Body.Note
	}
	payload, err := json.Marshal(queue_tasks.BackupPayload{
		RequestedBy: ctx.GetStringContextData("Username"),
		Note:        note,
	})
	if err != nil {
		logger.Error("error marshalling payload for backup queue")
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   payload,
		Name:      queue_tasks.HandleBackupTaskName,
		Priority:  mq_types.Low,
		ProcessIn: 1,
		TimeOut:   600,
	})
	server_response.Responder.Respond(ctx.Ctx, http.StatusAccepted, "backup scheduled", nil, nil, nil)
}

func TriggerGalleryRefresh(ctx *interfaces.ApplicationContext[any]) {
	payload, err := json.Marshal(queue_tasks.GalleryRefreshPayload{Reason: "manual refresh"})
	if err != nil {
		logger.Error("error marshalling payload for gallery refresh queue")
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   payload,
		Name:      queue_tasks.HandleGalleryRefreshTaskName,
		Priority:  mq_types.High,
		ProcessIn: 1,
	})
	server_response.Responder.Respond(ctx.Ctx, http.StatusAccepted, "gallery refresh scheduled", nil, nil, nil)
}

func FetchSettings(ctx *interfaces.ApplicationContext[any]) {
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "settings fetched",
		ml.PredictionService.CurrentSettings(), nil, nil)
}

func UpdateSettings(ctx *interfaces.ApplicationContext[dto.UpdateSettingsDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	settings := ml.PredictionService.CurrentSettings()
	if ctx.Body.DefaultAttendanceRate != nil {
		settings.DefaultAttendanceRate = *ctx.Body.DefaultAttendanceRate
	}
	if ctx.Body.DefaultAvgScore != nil {
		settings.DefaultAvgScore = *ctx.Body.DefaultAvgScore
	}
	if ctx.Body.WeakSubjectThreshold != nil {
		settings.WeakSubjectThreshold = *ctx.Body.WeakSubjectThreshold
	}
	if ctx.Body.VarianceAlertThreshold != nil {
		settings.VarianceAlertThreshold = *ctx.Body.VarianceAlertThreshold
	}
	if ctx.Body.FailureAlertThreshold != nil {
		settings.FailureAlertThreshold = *ctx.Body.FailureAlertThreshold
	}
	if ctx.Body.DropoutAlertThreshold != nil {
		settings.DropoutAlertThreshold = *ctx.Body.DropoutAlertThreshold
	}
	ml.PredictionService.ApplySettings(settings)

	raw, err := json.Marshal(settings)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if !cache.Cache.CreateEntry(ml.SettingsCacheKey, string(raw), 0) {
		logger.Error("could not persist updated prediction settings")
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "settings updated", settings, nil, nil)
}

func SystemStats(ctx *interfaces.ApplicationContext[any]) {
	students, err := repository.StudentRepo().CountDocs(map[string]any{"deletedAt": nil})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	attendance, err := repository.AttendanceRepo().CountDocs(map[string]any{})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	predictions, err := repository.PredictionRepo().CountDocs(map[string]any{})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "system stats", map[string]any{
		"students":          students,
		"attendanceRecords": attendance,
		"predictions":       predictions,
		"gallerySize":       biometric.FaceService.Gallery.Size(),
	}, nil, nil)
}
