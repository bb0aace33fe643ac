package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"smartedu.io/infrastructure/logger"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"smartedu.io/infrastructure/messaging/emails"
	"github.com/hibiken/asynq"
)

var HandleAdvisorAlertTaskName mq_types.Queues = "advisor_alert"

type AdvisorAlertPayload struct {
	StudentID       string
	StudentName     string
	MatricNumber    string
	GPAPrediction   float64
	FailureRisk     float64
	DropoutRisk     float64
	Recommendations string
	mq_types.BasePayload
}

// HandleAdvisorAlertTask emails the academic advisor about a student whose
// dropout risk crossed the alert threshold.
func HandleAdvisorAlertTask(ctx context.Context, t *asynq.Task) error {
	var payload AdvisorAlertPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling advisor alert queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	advisorEmail := os.Getenv("ADVISOR_ALERT_EMAIL")
	if advisorEmail == "" {
		logger.Warning("no advisor alert email configured, dropping alert", logger.LoggerOptions{
			Key:  "studentID",
			Data: payload.StudentID,
		})
		return asynq.SkipRetry
	}

	subject := fmt.Sprintf("Academic risk alert: %s (%s)", payload.StudentName, payload.MatricNumber)
	success := emails.EmailService.SendEmail(advisorEmail, subject, "advisor_risk_alert", map[string]any{
		"StudentName":     payload.StudentName,
		"MatricNumber":    payload.MatricNumber,
		"GPAPrediction":   payload.GPAPrediction,
		"FailureRisk":     payload.FailureRisk,
		"DropoutRisk":     payload.DropoutRisk,
		"Recommendations": payload.Recommendations,
	})
	if !success {
		return fmt.Errorf("failed to send advisor alert for student %s", payload.StudentID)
	}
	return nil
}
