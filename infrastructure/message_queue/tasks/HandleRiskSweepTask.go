package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"smartedu.io/application/repository"
	prediction_usecases "smartedu.io/application/usecases/prediction"
	"smartedu.io/infrastructure/logger"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"smartedu.io/infrastructure/messaging/emails"
	"smartedu.io/infrastructure/ml"
	"github.com/hibiken/asynq"
)

var HandleRiskSweepTaskName mq_types.Queues = "nightly_risk_sweep"

type RiskSweepPayload struct {
	Semester string
	mq_types.BasePayload
}

// HandleRiskSweepTask rescores every active student and alerts the advisor
// about any whose dropout risk crosses the configured threshold. One student
// failing to score never aborts the sweep.
func HandleRiskSweepTask(ctx context.Context, t *asynq.Task) error {
	var payload RiskSweepPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling risk sweep queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	students, err := repository.StudentRepo().FindMany(map[string]any{
		"deletedAt": nil,
	})
	if err != nil {
		return err
	}

	advisorEmail := os.Getenv("ADVISOR_ALERT_EMAIL")
	threshold := ml.PredictionService.Recommender.DropoutAlertThreshold
	scored, flagged := 0, 0
	for i := range *students {
		student := &(*students)[i]
		prediction, err := prediction_usecases.ScoreStudentUseCase(student, payload.Semester)
		if err != nil {
			logger.Warning("risk sweep could not score student", logger.LoggerOptions{
				Key:  "studentID",
				Data: student.ID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			continue
		}
		scored++
		if prediction.DropoutRisk <= threshold || advisorEmail == "" {
			continue
		}
		flagged++
		emails.EmailService.SendEmail(
			advisorEmail,
			fmt.Sprintf("Academic risk alert: %s %s (%s)", student.FirstName, student.LastName, student.MatricNumber),
			"advisor_risk_alert",
			map[string]any{
				"StudentName":     fmt.Sprintf("%s %s", student.FirstName, student.LastName),
				"MatricNumber":    student.MatricNumber,
				"GPAPrediction":   prediction.GPAPrediction,
				"FailureRisk":     prediction.FailureRisk,
				"DropoutRisk":     prediction.DropoutRisk,
				"Recommendations": prediction.Recommendations,
			},
		)
	}
	logger.Info("nightly risk sweep completed", logger.LoggerOptions{
		Key:  "studentsScored",
		Data: scored,
	}, logger.LoggerOptions{
		Key:  "studentsFlagged",
		Data: flagged,
	})
	return nil
}
