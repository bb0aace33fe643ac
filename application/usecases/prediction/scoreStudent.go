package prediction_usecases

import (
	"context"
	"encoding/json"
	"time"

	"smartedu.io/application/constants"
	"smartedu.io/application/repository"
	"smartedu.io/entities"
	"smartedu.io/infrastructure/ml"
)

// ScoreStudentUseCase runs the full prediction pipeline for one student and
// persists the result. It has no transport concerns so the nightly sweep can
// reuse it verbatim.
func ScoreStudentUseCase(student *entities.Student, semester string) (*entities.PerformancePrediction, error) {
	if semester == "" {
		semester = constants.DEFAULT_SEMESTER
	}

	attendanceRows, err := repository.AttendanceRepo().FindMany(map[string]any{
		"studentID": student.ID,
	})
	if err != nil {
		return nil, err
	}

	academicFilter := map[string]any{
		"studentID": student.ID,
	}
	if semester != constants.DEFAULT_SEMESTER {
		academicFilter["semester"] = semester
	}
	academicRows, err := repository.AcademicRecordRepo().FindMany(academicFilter)
	if err != nil {
		return nil, err
	}

	attendance := make([]ml.AttendanceRecord, 0, len(*attendanceRows))
	for _, row := range *attendanceRows {
		attendance = append(attendance, ml.AttendanceRecord{
			Subject: row.SubjectName,
			Status:  row.Status,
			Date:    row.Date,
		})
	}
	academics := make([]ml.AcademicScore, 0, len(*academicRows))
	for _, row := range *academicRows {
		academics = append(academics, ml.AcademicScore{
			Subject:  row.SubjectName,
			Score:    row.Score,
			MaxScore: row.MaxScore,
		})
	}

	prediction, err := ml.PredictionService.Predict(ml.PredictionInput{
		EnrollmentDate: student.EnrollmentDate,
		Attendance:     attendance,
		Academics:      academics,
		AsOf:           time.Now(),
	})
	if err != nil {
		return nil, err
	}

	weakSubjects, err := json.Marshal(prediction.WeakSubjects)
	if err != nil {
		return nil, err
	}
	return repository.PredictionRepo().CreateOne(context.Background(), entities.PerformancePrediction{
		StudentID:                 student.ID,
		Semester:                  semester,
		GPAPrediction:             prediction.GPAPrediction,
		FailureRisk:               prediction.FailureRisk,
		DropoutRisk:               prediction.DropoutRisk,
		AttendanceImpact:          prediction.AttendanceImpact,
		PreviousPerformanceImpact: prediction.PreviousPerformanceImpact,
		Recommendations:           prediction.Recommendations,
		WeakSubjects:              string(weakSubjects),
		FallbackUsed:              prediction.FallbackUsed,
	})
}
