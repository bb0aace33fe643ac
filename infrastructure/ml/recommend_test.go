package ml

import (
	"strings"
	"testing"
)

func defaultRecommender() *Recommender {
	return &Recommender{
		WeakSubjectThreshold:   0.6,
		VarianceAlertThreshold: 0.3,
		FailureAlertThreshold:  0.7,
		DropoutAlertThreshold:  0.5,
	}
}

func TestRecommendOnTrack(t *testing.T) {
	recommender := defaultRecommender()
	message := recommender.Recommend(
		FeatureVector{AttendanceRate: 0.95, AvgScore: 0.85, ScoreVariance: 0.01},
		RiskScores{FailureRisk: 0.1, DropoutRisk: 0.07},
	)
	if message != OnTrackMessage {
		t.Errorf("expected on-track message, got %q", message)
	}
}

func TestRecommendHighRiskOrdering(t *testing.T) {
	recommender := defaultRecommender()
	message := recommender.Recommend(
		FeatureVector{AttendanceRate: 0.9, AvgScore: 0.9},
		RiskScores{FailureRisk: 0.75, DropoutRisk: 0.55},
	)
	expected := "High failure risk detected - immediate intervention required; " +
		"Consider counseling services to address challenges"
	if message != expected {
		t.Errorf("expected %q, got %q", expected, message)
	}
}

func TestRecommendIndividualRules(t *testing.T) {
	tests := []struct {
		name     string
		features FeatureVector
		scores   RiskScores
		expected string
	}{
		{
			name:     "low attendance",
			features: FeatureVector{AttendanceRate: 0.79, AvgScore: 0.9},
			expected: "Improve attendance rate - attend classes regularly",
		},
		{
			name:     "low average",
			features: FeatureVector{AttendanceRate: 0.9, AvgScore: 0.59},
			expected: "Focus on improving academic performance - seek additional help",
		},
		{
			name:     "inconsistent subjects",
			features: FeatureVector{AttendanceRate: 0.9, AvgScore: 0.9, ScoreVariance: 0.31},
			expected: "Inconsistent performance across subjects - focus on weak areas",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recommender := defaultRecommender()
			message := recommender.Recommend(tc.features, tc.scores)
			if message != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, message)
			}
		})
	}
}

func TestRecommendThresholdsAreExclusive(t *testing.T) {
	recommender := defaultRecommender()
	message := recommender.Recommend(
		FeatureVector{AttendanceRate: 0.8, AvgScore: 0.6, ScoreVariance: 0.3},
		RiskScores{FailureRisk: 0.7, DropoutRisk: 0.5},
	)
	if message != OnTrackMessage {
		t.Errorf("values exactly at their thresholds must not trigger, got %q", message)
	}
}

func TestRecommendAllRulesTriggered(t *testing.T) {
	recommender := defaultRecommender()
	message := recommender.Recommend(
		FeatureVector{AttendanceRate: 0.1, AvgScore: 0.1, ScoreVariance: 0.5},
		RiskScores{FailureRisk: 0.9, DropoutRisk: 0.63},
	)
	if parts := strings.Split(message, "; "); len(parts) != 5 {
		t.Errorf("expected 5 messages, got %d: %q", len(parts), message)
	}
	if !strings.HasPrefix(message, "Improve attendance rate") {
		t.Errorf("attendance message must come first, got %q", message)
	}
}

func TestWeakSubjectsFilterAndOrder(t *testing.T) {
	recommender := defaultRecommender()
	weak := recommender.WeakSubjects([]SubjectAverage{
		{Subject: "Physics", AvgScore: 0.3},
		{Subject: "Mathematics", AvgScore: 0.9},
		{Subject: "History", AvgScore: 0.55},
	})
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak subjects, got %d", len(weak))
	}
	if weak[0].Subject != "Physics" || weak[1].Subject != "History" {
		t.Errorf("expected first-appearance order [Physics History], got %+v", weak)
	}
	if weak[0].AvgScore != 0.3 {
		t.Errorf("expected Physics average 0.3, got %v", weak[0].AvgScore)
	}
}

func TestWeakSubjectsEmptyIsNotNil(t *testing.T) {
	recommender := defaultRecommender()
	weak := recommender.WeakSubjects([]SubjectAverage{{Subject: "Mathematics", AvgScore: 1}})
	if weak == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(weak) != 0 {
		t.Errorf("expected no weak subjects, got %+v", weak)
	}
}
