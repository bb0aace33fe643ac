package ml

import (
	"errors"
	"math"
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestExtractComputesAllFeatures(t *testing.T) {
	extractor := &Extractor{}
	attendance := []AttendanceRecord{
		{Subject: "Mathematics", Status: StatusPresent},
		{Subject: "Mathematics", Status: StatusAbsent},
		{Subject: "Physics", Status: StatusPresent},
		{Subject: "Physics", Status: StatusLate},
	}
	academics := []AcademicScore{
		{Subject: "Mathematics", Score: 90, MaxScore: 100},
		{Subject: "Physics", Score: 30, MaxScore: 100},
	}

	features, err := extractor.Extract(date("2024-01-01"), attendance, academics, date("2024-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(features.AttendanceRate, 0.5) {
		t.Errorf("expected attendance rate 0.5, got %v", features.AttendanceRate)
	}
	if !almostEqual(features.AvgScore, 0.6) {
		t.Errorf("expected avg score 0.6, got %v", features.AvgScore)
	}
	if !almostEqual(features.EnrollmentDurationDays, 30) {
		t.Errorf("expected 30 enrollment days, got %v", features.EnrollmentDurationDays)
	}
	if features.NumSubjects != 2 {
		t.Errorf("expected 2 subjects, got %v", features.NumSubjects)
	}
	// averages 0.9 and 0.3 around a mean of 0.6
	if !almostEqual(features.ScoreVariance, 0.09) {
		t.Errorf("expected variance 0.09, got %v", features.ScoreVariance)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := &Extractor{DefaultAttendanceRate: 0.8, DefaultAvgScore: 0.75}
	academics := []AcademicScore{
		{Subject: "Chemistry", Score: 55, MaxScore: 100},
		{Subject: "Chemistry", Score: 65, MaxScore: 100},
	}

	first, err := extractor.Extract(date("2023-09-01"), nil, academics, date("2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := extractor.Extract(date("2023-09-01"), nil, academics, date("2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first != *second {
		t.Errorf("identical inputs produced different vectors: %+v vs %+v", first, second)
	}
}

func TestExtractUsesDefaultsForEmptyHistory(t *testing.T) {
	tests := []struct {
		name               string
		extractor          Extractor
		expectedAttendance float64
		expectedAvg        float64
	}{
		{name: "demo profile", extractor: Extractor{}, expectedAttendance: 0, expectedAvg: 0},
		{name: "full profile", extractor: Extractor{DefaultAttendanceRate: 0.8, DefaultAvgScore: 0.75}, expectedAttendance: 0.8, expectedAvg: 0.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			features, err := tc.extractor.Extract(date("2024-01-01"), nil, nil, date("2024-02-01"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(features.AttendanceRate, tc.expectedAttendance) {
				t.Errorf("expected attendance rate %v, got %v", tc.expectedAttendance, features.AttendanceRate)
			}
			if !almostEqual(features.AvgScore, tc.expectedAvg) {
				t.Errorf("expected avg score %v, got %v", tc.expectedAvg, features.AvgScore)
			}
			if features.NumSubjects != 0 || features.ScoreVariance != 0 {
				t.Errorf("expected zero subject features, got %+v", features)
			}
		})
	}
}

func TestExtractRejectsFutureEnrollment(t *testing.T) {
	extractor := &Extractor{}
	_, err := extractor.Extract(date("2024-06-01"), nil, nil, date("2024-01-01"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExtractRejectsMalformedScores(t *testing.T) {
	tests := []struct {
		name   string
		record AcademicScore
	}{
		{name: "zero max score", record: AcademicScore{Subject: "Biology", Score: 10, MaxScore: 0}},
		{name: "negative max score", record: AcademicScore{Subject: "Biology", Score: 10, MaxScore: -5}},
		{name: "negative score", record: AcademicScore{Subject: "Biology", Score: -1, MaxScore: 100}},
		{name: "score above max", record: AcademicScore{Subject: "Biology", Score: 101, MaxScore: 100}},
	}

	extractor := &Extractor{}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extractor.Extract(date("2024-01-01"), nil, []AcademicScore{tc.record}, date("2024-02-01"))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSubjectAveragesPreserveFirstAppearanceOrder(t *testing.T) {
	academics := []AcademicScore{
		{Subject: "Physics", Score: 40, MaxScore: 100},
		{Subject: "Mathematics", Score: 80, MaxScore: 100},
		{Subject: "Physics", Score: 60, MaxScore: 100},
		{Subject: "History", Score: 70, MaxScore: 100},
	}

	averages, err := SubjectAverages(academics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(averages) != 3 {
		t.Fatalf("expected 3 subjects, got %d", len(averages))
	}
	expectedOrder := []string{"Physics", "Mathematics", "History"}
	for i, subject := range expectedOrder {
		if averages[i].Subject != subject {
			t.Errorf("expected subject %s at position %d, got %s", subject, i, averages[i].Subject)
		}
	}
	if !almostEqual(averages[0].AvgScore, 0.5) {
		t.Errorf("expected Physics average 0.5, got %v", averages[0].AvgScore)
	}
}

func TestPopulationVarianceSingleSubjectIsZero(t *testing.T) {
	averages, err := SubjectAverages([]AcademicScore{
		{Subject: "Mathematics", Score: 100, MaxScore: 100},
		{Subject: "Mathematics", Score: 100, MaxScore: 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if variance := populationVariance(averages); variance != 0 {
		t.Errorf("expected zero variance for a single subject, got %v", variance)
	}
}
