package student_usecases

import (
	"context"
	"errors"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/constants"
	"smartedu.io/application/repository"
)

var errNotFound = errors.New("student not found")

// SetReferenceImageUseCase replaces a student's reference photo and their
// gallery entry in one step.
func SetReferenceImageUseCase(ctx any, studentID string, imageURL string) error {
	studentRepo := repository.StudentRepo()
	student, err := studentRepo.FindByID(studentID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return err
	}
	if student == nil {
		apperrors.NotFoundError(ctx, "Student not found")
		return errNotFound
	}

	if err := enrollReferenceImage(ctx, studentID, imageURL); err != nil {
		return err
	}

	_, err = studentRepo.UpdatePartialByID(context.Background(), studentID, map[string]any{
		"faceImageURL": imageURL,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return err
	}
	return nil
}

func noUsableReferenceImageCode() *uint {
	return &constants.NO_USABLE_REFERENCE_IMAGE
}
