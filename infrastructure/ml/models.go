package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"smartedu.io/infrastructure/logger"
)

// ScoringModel is the single capability every predictive model exposes.
// Concrete variants are either a trained linear model loaded from disk or a
// deterministic heuristic; the variant is chosen at construction time, never
// through runtime failure handling.
type ScoringModel interface {
	Score(features FeatureVector) float64
}

// LinearModel is a trained regressor or classifier exported as a JSON
// coefficient file by the offline training pipeline.
type LinearModel struct {
	Intercept float64 `json:"intercept"`
	Weights   struct {
		AttendanceRate         float64 `json:"attendance_rate"`
		AvgScore               float64 `json:"avg_score"`
		EnrollmentDurationDays float64 `json:"enrollment_duration_days"`
		NumSubjects            float64 `json:"num_subjects"`
		ScoreVariance          float64 `json:"score_variance"`
	} `json:"weights"`
}

func (lm *LinearModel) Score(features FeatureVector) float64 {
	return lm.Intercept +
		lm.Weights.AttendanceRate*features.AttendanceRate +
		lm.Weights.AvgScore*features.AvgScore +
		lm.Weights.EnrollmentDurationDays*features.EnrollmentDurationDays +
		lm.Weights.NumSubjects*features.NumSubjects +
		lm.Weights.ScoreVariance*features.ScoreVariance
}

func loadLinearModel(modelsDir string, name string) (*LinearModel, error) {
	raw, err := os.ReadFile(filepath.Join(modelsDir, name))
	if err != nil {
		return nil, err
	}
	var model LinearModel
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("could not parse model file %s: %w", name, err)
	}
	return &model, nil
}

// gpaHeuristic is the deterministic fallback used when no trained GPA
// regressor is available.
type gpaHeuristic struct{}

func (gpaHeuristic) Score(features FeatureVector) float64 {
	return 2.5 + features.AvgScore*1.5 + features.AttendanceRate*0.5
}

// failureRiskHeuristic is the deterministic fallback failure classifier.
type failureRiskHeuristic struct{}

func (failureRiskHeuristic) Score(features FeatureVector) float64 {
	return math.Max(0, 1-features.AvgScore-features.AttendanceRate+0.2)
}

// dropoutRiskHeuristic derives dropout risk from whatever failure model is in
// use.
type dropoutRiskHeuristic struct {
	failure ScoringModel
}

func (dh dropoutRiskHeuristic) Score(features FeatureVector) float64 {
	return dh.failure.Score(features) * 0.7
}

// RiskScores is the scoring engine's output, already clamped and rounded.
type RiskScores struct {
	GPAPrediction float64
	FailureRisk   float64
	DropoutRisk   float64

	// FallbackUsed records that at least one heuristic stood in for a trained
	// model. Degraded output is still served; this flag keeps it auditable.
	FallbackUsed bool
}

// Engine wraps the three predictive models behind one scoring call.
type Engine struct {
	gpa          ScoringModel
	failure      ScoringModel
	dropout      ScoringModel
	fallbackUsed bool
}

// NewEngine builds the engine from trained model files under modelsDir,
// substituting the deterministic heuristics for any model that cannot be
// loaded. A missing model is reported through the logs, never to callers; a
// degraded score always beats no score.
func NewEngine(modelsDir string) *Engine {
	engine := &Engine{}

	engine.gpa = engine.loadOrFallback(modelsDir, "gpa_model.json", gpaHeuristic{})
	engine.failure = engine.loadOrFallback(modelsDir, "failure_model.json", failureRiskHeuristic{})
	engine.dropout = engine.loadOrFallback(modelsDir, "dropout_model.json", dropoutRiskHeuristic{failure: engine.failure})

	return engine
}

// NewEngineWithModels wires explicit models, used by tests and by callers
// that manage model loading themselves.
func NewEngineWithModels(gpa, failure, dropout ScoringModel, fallbackUsed bool) *Engine {
	return &Engine{gpa: gpa, failure: failure, dropout: dropout, fallbackUsed: fallbackUsed}
}

func (e *Engine) loadOrFallback(modelsDir string, name string, fallback ScoringModel) ScoringModel {
	model, err := loadLinearModel(modelsDir, name)
	if err != nil {
		logger.Warning("trained model unavailable, substituting heuristic", logger.LoggerOptions{
			Key:  "model",
			Data: name,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err.Error(),
		})
		e.fallbackUsed = true
		return fallback
	}
	logger.Info("trained model loaded", logger.LoggerOptions{
		Key:  "model",
		Data: name,
	})
	return model
}

// Score runs all three models over one feature vector.
func (e *Engine) Score(features FeatureVector) RiskScores {
	return RiskScores{
		GPAPrediction: roundTo(clamp(e.gpa.Score(features), 0, 4), 2),
		FailureRisk:   roundTo(clamp(e.failure.Score(features), 0, 1), 3),
		DropoutRisk:   roundTo(clamp(e.dropout.Score(features), 0, 1), 3),
		FallbackUsed:  e.fallbackUsed,
	}
}

func clamp(value, low, high float64) float64 {
	return math.Min(high, math.Max(low, value))
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
