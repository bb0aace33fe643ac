package ml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHeuristicEngineScoresAndClamps(t *testing.T) {
	engine := NewEngineWithModels(gpaHeuristic{}, failureRiskHeuristic{}, dropoutRiskHeuristic{failure: failureRiskHeuristic{}}, true)

	tests := []struct {
		name            string
		features        FeatureVector
		expectedGPA     float64
		expectedFailure float64
		expectedDropout float64
	}{
		{
			name:     "strong student clamps gpa at 4.0",
			features: FeatureVector{AttendanceRate: 1, AvgScore: 1},
			// raw heuristic value is 4.5
			expectedGPA:     4.0,
			expectedFailure: 0,
			expectedDropout: 0,
		},
		{
			name:            "struggling student",
			features:        FeatureVector{AttendanceRate: 0.4, AvgScore: 0.3},
			expectedGPA:     3.15,
			expectedFailure: 0.5,
			expectedDropout: 0.35,
		},
		{
			name:     "no history clamps failure risk at 1",
			features: FeatureVector{},
			// raw failure value is 1.2; dropout composes the raw score
			expectedGPA:     2.5,
			expectedFailure: 1,
			expectedDropout: 0.84,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores := engine.Score(tc.features)
			if scores.GPAPrediction != tc.expectedGPA {
				t.Errorf("expected gpa %v, got %v", tc.expectedGPA, scores.GPAPrediction)
			}
			if scores.FailureRisk != tc.expectedFailure {
				t.Errorf("expected failure risk %v, got %v", tc.expectedFailure, scores.FailureRisk)
			}
			if scores.DropoutRisk != tc.expectedDropout {
				t.Errorf("expected dropout risk %v, got %v", tc.expectedDropout, scores.DropoutRisk)
			}
			if !scores.FallbackUsed {
				t.Error("expected fallback flag to be carried through")
			}
		})
	}
}

func TestEngineRounding(t *testing.T) {
	engine := NewEngineWithModels(gpaHeuristic{}, failureRiskHeuristic{}, dropoutRiskHeuristic{failure: failureRiskHeuristic{}}, false)

	scores := engine.Score(FeatureVector{AttendanceRate: 0.333, AvgScore: 0.333})
	// gpa raw 3.166, failure raw 0.534, dropout raw 0.3738
	if scores.GPAPrediction != 3.17 {
		t.Errorf("expected gpa rounded to 2dp, got %v", scores.GPAPrediction)
	}
	if scores.FailureRisk != 0.534 {
		t.Errorf("expected failure risk rounded to 3dp, got %v", scores.FailureRisk)
	}
	if scores.DropoutRisk != 0.374 {
		t.Errorf("expected dropout risk rounded to 3dp, got %v", scores.DropoutRisk)
	}
	if scores.FallbackUsed {
		t.Error("fully trained engine must not report fallback")
	}
}

func TestNewEngineLoadsTrainedModels(t *testing.T) {
	modelsDir := t.TempDir()
	gpaModel := `{"intercept": 1.0, "weights": {"attendance_rate": 1.0, "avg_score": 2.0, "enrollment_duration_days": 0, "num_subjects": 0, "score_variance": 0}}`
	if err := os.WriteFile(filepath.Join(modelsDir, "gpa_model.json"), []byte(gpaModel), 0o644); err != nil {
		t.Fatalf("could not write model file: %v", err)
	}

	engine := NewEngine(modelsDir)
	scores := engine.Score(FeatureVector{AttendanceRate: 0.5, AvgScore: 0.5})

	// 1.0 + 0.5 + 1.0 from the trained coefficients
	if scores.GPAPrediction != 2.5 {
		t.Errorf("expected trained gpa model output 2.5, got %v", scores.GPAPrediction)
	}
	if !scores.FallbackUsed {
		t.Error("missing failure and dropout models should mark the engine degraded")
	}
}

func TestNewEngineFallsBackWhenNoModelsPresent(t *testing.T) {
	engine := NewEngine(t.TempDir())
	scores := engine.Score(FeatureVector{AttendanceRate: 1, AvgScore: 1})
	if !scores.FallbackUsed {
		t.Error("expected degraded engine when no model files exist")
	}
	if scores.GPAPrediction != 4.0 {
		t.Errorf("expected heuristic gpa 4.0, got %v", scores.GPAPrediction)
	}
}

func TestNewEngineRejectsCorruptModelFile(t *testing.T) {
	modelsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modelsDir, "failure_model.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("could not write model file: %v", err)
	}

	engine := NewEngine(modelsDir)
	scores := engine.Score(FeatureVector{AttendanceRate: 1, AvgScore: 1})
	if !scores.FallbackUsed {
		t.Error("corrupt model file should fall back to the heuristic")
	}
	if scores.FailureRisk != 0 {
		t.Errorf("expected heuristic failure risk 0, got %v", scores.FailureRisk)
	}
}
