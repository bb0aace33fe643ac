package prediction_usecases

import (
	"errors"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/logger"
	"smartedu.io/infrastructure/ml"
)

// PredictPerformanceUseCase resolves the student and scores them on demand.
func PredictPerformanceUseCase(ctx any, studentID string, semester string) (*entities.PerformancePrediction, error) {
	studentRepo := repository.StudentRepo()
	student, err := studentRepo.FindByID(studentID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if student == nil {
		err = errors.New("student not found")
		apperrors.NotFoundError(ctx, "Student not found")
		return nil, err
	}

	prediction, err := ScoreStudentUseCase(student, semester)
	if err != nil {
		if errors.Is(err, ml.ErrInvalidInput) {
			apperrors.ClientError(ctx, err.Error(), nil, nil)
			return nil, err
		}
		logger.Error("an error occured while scoring student", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "studentID",
			Data: studentID,
		})
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return prediction, nil
}
