package student_usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/biometric"
	"smartedu.io/infrastructure/logger"
)

// CreateStudentUseCase registers a student profile. When a reference photo is
// supplied it is enrolled into the face gallery immediately; a photo with no
// detectable face fails the whole request so the record never exists without
// the promised photo.
func CreateStudentUseCase(ctx any, payload *dto.CreateStudentDTO) (*entities.Student, error) {
	payload.MatricNumber = strings.ToUpper(payload.MatricNumber)

	studentRepo := repository.StudentRepo()
	existing, err := studentRepo.CountDocs(map[string]any{
		"matricNumber": payload.MatricNumber,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if existing != 0 {
		err = errors.New("a student with this matric number already exists")
		apperrors.EntityAlreadyExistsError(ctx, err.Error())
		return nil, err
	}

	enrollmentDate := time.Now()
	if payload.EnrollmentDate != nil {
		enrollmentDate = *payload.EnrollmentDate
	}
	student, err := studentRepo.CreateOne(context.Background(), entities.Student{
		MatricNumber:   payload.MatricNumber,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		DateOfBirth:    payload.DateOfBirth,
		Gender:         payload.Gender,
		Phone:          payload.Phone,
		Address:        payload.Address,
		EnrollmentDate: enrollmentDate,
		FaceImageURL:   payload.FaceImageURL,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}

	if payload.FaceImageURL != nil {
		if err := enrollReferenceImage(ctx, student.ID, *payload.FaceImageURL); err != nil {
			studentRepo.DeleteByID(context.Background(), student.ID)
			return nil, err
		}
	}
	logger.Info("student enrolled", logger.LoggerOptions{
		Key:  "matricNumber",
		Data: student.MatricNumber,
	})
	return student, nil
}

func enrollReferenceImage(ctx any, studentID string, imageURL string) error {
	err := biometric.FaceService.EnrollFace(studentID, imageURL)
	if err == nil {
		return nil
	}
	if errors.Is(err, biometric.ErrNoFaceDetected) {
		apperrors.ClientError(ctx, "no face could be detected in the supplied reference image", nil, noUsableReferenceImageCode())
		return err
	}
	apperrors.ExternalDependencyError(ctx, "face encoder", "500", err)
	return err
}
