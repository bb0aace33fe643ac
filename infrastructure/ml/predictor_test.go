package ml

import (
	"errors"
	"strings"
	"testing"
)

func newTestPredictor(defaultAttendance float64) *Predictor {
	return &Predictor{
		Extractor: &Extractor{DefaultAttendanceRate: defaultAttendance},
		Engine:    NewEngineWithModels(gpaHeuristic{}, failureRiskHeuristic{}, dropoutRiskHeuristic{failure: failureRiskHeuristic{}}, true),
		Recommender: &Recommender{
			WeakSubjectThreshold:   0.6,
			VarianceAlertThreshold: 0.3,
			FailureAlertThreshold:  0.7,
			DropoutAlertThreshold:  0.5,
		},
	}
}

func perfectRecords(count int) []AcademicScore {
	records := make([]AcademicScore, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, AcademicScore{Subject: "Mathematics", Score: 100, MaxScore: 100})
	}
	return records
}

func TestPredictPerfectSingleSubject(t *testing.T) {
	// 10 perfect scores in one subject, no attendance history
	input := PredictionInput{
		EnrollmentDate: date("2023-09-01"),
		Academics:      perfectRecords(10),
		AsOf:           date("2024-06-01"),
	}

	t.Run("default attendance above attendance threshold", func(t *testing.T) {
		prediction, err := newTestPredictor(0.8).Predict(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prediction.Features.AvgScore != 1.0 {
			t.Errorf("expected avg score 1.0, got %v", prediction.Features.AvgScore)
		}
		if prediction.Features.ScoreVariance != 0 {
			t.Errorf("expected zero variance, got %v", prediction.Features.ScoreVariance)
		}
		if len(prediction.WeakSubjects) != 0 {
			t.Errorf("expected no weak subjects, got %+v", prediction.WeakSubjects)
		}
		if prediction.Recommendations != OnTrackMessage {
			t.Errorf("expected on-track message, got %q", prediction.Recommendations)
		}
	})

	t.Run("default attendance below attendance threshold", func(t *testing.T) {
		prediction, err := newTestPredictor(0).Predict(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(prediction.Recommendations, "Improve attendance rate") {
			t.Errorf("expected attendance message first, got %q", prediction.Recommendations)
		}
	})
}

func TestPredictWeakSubjectDetection(t *testing.T) {
	prediction, err := newTestPredictor(0.8).Predict(PredictionInput{
		EnrollmentDate: date("2023-09-01"),
		Academics: []AcademicScore{
			{Subject: "Mathematics", Score: 90, MaxScore: 100},
			{Subject: "Physics", Score: 30, MaxScore: 100},
		},
		AsOf: date("2024-06-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(prediction.WeakSubjects) != 1 {
		t.Fatalf("expected exactly one weak subject, got %+v", prediction.WeakSubjects)
	}
	if prediction.WeakSubjects[0].Subject != "Physics" || prediction.WeakSubjects[0].AvgScore != 0.3 {
		t.Errorf("expected Physics at 0.3, got %+v", prediction.WeakSubjects[0])
	}
	// variance of {0.9, 0.3} is 0.09, below the inconsistency threshold
	if strings.Contains(prediction.Recommendations, "Inconsistent performance") {
		t.Errorf("variance 0.09 must not trigger the inconsistency rule: %q", prediction.Recommendations)
	}
}

func TestPredictMapsScoresAndImpacts(t *testing.T) {
	prediction, err := newTestPredictor(0).Predict(PredictionInput{
		EnrollmentDate: date("2024-01-01"),
		Attendance: []AttendanceRecord{
			{Subject: "Mathematics", Status: StatusPresent},
			{Subject: "Mathematics", Status: StatusPresent},
			{Subject: "Mathematics", Status: StatusAbsent},
			{Subject: "Mathematics", Status: StatusLate},
		},
		Academics: []AcademicScore{
			{Subject: "Mathematics", Score: 80, MaxScore: 100},
		},
		AsOf: date("2024-06-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prediction.AttendanceImpact != 0.5 {
		t.Errorf("expected attendance impact 0.5, got %v", prediction.AttendanceImpact)
	}
	if prediction.PreviousPerformanceImpact != 0.8 {
		t.Errorf("expected performance impact 0.8, got %v", prediction.PreviousPerformanceImpact)
	}
	// gpa = 2.5 + 1.5*0.8 + 0.5*0.5
	if prediction.GPAPrediction != 3.95 {
		t.Errorf("expected gpa 3.95, got %v", prediction.GPAPrediction)
	}
	if !prediction.FallbackUsed {
		t.Error("expected fallback flag carried into the prediction")
	}
}

func TestPredictIsIdempotent(t *testing.T) {
	predictor := newTestPredictor(0.8)
	input := PredictionInput{
		EnrollmentDate: date("2023-09-01"),
		Attendance: []AttendanceRecord{
			{Subject: "Physics", Status: StatusPresent},
			{Subject: "Physics", Status: StatusLate},
		},
		Academics: []AcademicScore{
			{Subject: "Physics", Score: 45, MaxScore: 100},
			{Subject: "Chemistry", Score: 88, MaxScore: 100},
		},
		AsOf: date("2024-06-01"),
	}

	first, err := predictor.Predict(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := predictor.Predict(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.GPAPrediction != second.GPAPrediction ||
		first.FailureRisk != second.FailureRisk ||
		first.DropoutRisk != second.DropoutRisk ||
		first.Recommendations != second.Recommendations {
		t.Errorf("repeated prediction diverged: %+v vs %+v", first, second)
	}
}

func TestPredictPropagatesInvalidInput(t *testing.T) {
	_, err := newTestPredictor(0).Predict(PredictionInput{
		EnrollmentDate: date("2025-01-01"),
		AsOf:           date("2024-01-01"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
