package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"smartedu.io/application/repository"
	"smartedu.io/infrastructure/logger"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

var HandleBackupTaskName mq_types.Queues = "database_backup"

type BackupPayload struct {
	RequestedBy string
	Note        string
	mq_types.BasePayload
}

// HandleBackupTask exports the academic collections to a timestamped JSON
// file under BACKUP_DIR.
func HandleBackupTask(ctx context.Context, t *asynq.Task) error {
	var payload BackupPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling backup queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	students, err := repository.StudentRepo().FindMany(map[string]any{})
	if err != nil {
		return err
	}
	attendance, err := repository.AttendanceRepo().FindMany(map[string]any{})
	if err != nil {
		return err
	}
	academics, err := repository.AcademicRecordRepo().FindMany(map[string]any{})
	if err != nil {
		return err
	}
	predictions, err := repository.PredictionRepo().FindMany(map[string]any{})
	if err != nil {
		return err
	}

	dump, err := json.Marshal(map[string]any{
		"createdAt":       time.Now().UTC(),
		"requestedBy":     payload.RequestedBy,
		"note":            payload.Note,
		"students":        students,
		"attendance":      attendance,
		"academicRecords": academics,
		"predictions":     predictions,
	})
	if err != nil {
		return err
	}

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "backups"
	}
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(backupDir, fmt.Sprintf("backup_%s.json", time.Now().UTC().Format("20060102T150405")))
	if err := os.WriteFile(path, dump, 0o644); err != nil {
		return err
	}
	logger.Info("database backup written", logger.LoggerOptions{
		Key:  "path",
		Data: path,
	}, logger.LoggerOptions{
		Key:  "students",
		Data: len(*students),
	})
	return nil
}
