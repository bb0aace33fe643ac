package attendance_usecases

import (
	"context"
	"errors"
	"time"

	apperrors "smartedu.io/application/appErrors"
	"smartedu.io/application/constants"
	"smartedu.io/application/controller/dto"
	"smartedu.io/application/repository"
	"smartedu.io/application/utils"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/biometric"
	"smartedu.io/infrastructure/logger"
)

// MarkAttendanceFromFrameUseCase recognises every face in a classroom frame
// and marks the matched students present for the subject on that date.
// Students already marked for the subject that day are left untouched, so
// re-submitting a frame is safe.
func MarkAttendanceFromFrameUseCase(ctx any, payload *dto.MarkAttendanceDTO) (*[]entities.Attendance, int, error) {
	subjectRepo := repository.SubjectRepo()
	subject, err := subjectRepo.FindByID(payload.SubjectID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, 0, err
	}
	if subject == nil {
		err = errors.New("subject not found")
		apperrors.NotFoundError(ctx, "Subject not found")
		return nil, 0, err
	}

	matches, err := biometric.FaceService.RecogniseFrame(payload.FrameURL)
	if err != nil {
		apperrors.ExternalDependencyError(ctx, "face encoder", "500", err)
		return nil, 0, err
	}
	if len(matches) > constants.MAX_FRAME_FACES {
		logger.Warning("frame matched more faces than expected, truncating", logger.LoggerOptions{
			Key:  "facesMatched",
			Data: len(matches),
		})
		matches = matches[:constants.MAX_FRAME_FACES]
	}

	date := time.Now()
	if payload.Date != nil {
		date = *payload.Date
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	attendanceRepo := repository.AttendanceRepo()
	records := []entities.Attendance{}
	for _, match := range matches {
		marked, err := attendanceRepo.CountDocs(map[string]any{
			"studentID": match.StudentID,
			"subjectID": subject.ID,
			"date":      map[string]any{"$gte": dayStart, "$lt": dayEnd},
		})
		if err != nil {
			apperrors.UnknownError(ctx, err, nil)
			return nil, 0, err
		}
		if marked != 0 {
			continue
		}
		records = append(records, entities.Attendance{
			StudentID:             match.StudentID,
			SubjectID:             subject.ID,
			SubjectName:           subject.Name,
			Date:                  dayStart,
			Status:                "present",
			RecognitionConfidence: utils.GetFloat64Pointer(match.Confidence),
		})
	}

	if len(records) == 0 {
		empty := []entities.Attendance{}
		return &empty, len(matches), nil
	}
	created, err := attendanceRepo.CreateBulk(context.Background(), records)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, 0, err
	}
	saved := make([]entities.Attendance, 0, len(created))
	for _, record := range created {
		saved = append(saved, *record)
	}
	logger.Info("attendance marked from classroom frame", logger.LoggerOptions{
		Key:  "subjectID",
		Data: subject.ID,
	}, logger.LoggerOptions{
		Key:  "facesMatched",
		Data: len(matches),
	}, logger.LoggerOptions{
		Key:  "recordsCreated",
		Data: len(saved),
	})
	return &saved, len(matches), nil
}

// RecordManualAttendanceUseCase writes a single attendance row entered by a
// teacher, used for corrections or when recognition is unavailable.
func RecordManualAttendanceUseCase(ctx any, payload *dto.ManualAttendanceDTO) (*entities.Attendance, error) {
	studentRepo := repository.StudentRepo()
	student, err := studentRepo.FindByID(payload.StudentID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if student == nil {
		err = errors.New("student not found")
		apperrors.NotFoundError(ctx, "Student not found")
		return nil, err
	}

	subjectRepo := repository.SubjectRepo()
	subject, err := subjectRepo.FindByID(payload.SubjectID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if subject == nil {
		err = errors.New("subject not found")
		apperrors.NotFoundError(ctx, "Subject not found")
		return nil, err
	}

	date := time.Now()
	if payload.Date != nil {
		date = *payload.Date
	}
	record, err := repository.AttendanceRepo().CreateOne(context.Background(), entities.Attendance{
		StudentID:   student.ID,
		SubjectID:   subject.ID,
		SubjectName: subject.Name,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Status:      payload.Status,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return record, nil
}
