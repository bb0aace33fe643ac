package ml

import (
	"encoding/json"
	"os"
	"strconv"

	"smartedu.io/infrastructure/database/repository/cache"
	"smartedu.io/infrastructure/logger"
)

var PredictionService *Predictor

// SettingsCacheKey is where administrator overrides of the scoring knobs
// live. Saved settings win over the environment on restart.
const SettingsCacheKey = "smartedu-prediction-settings"

// InitialiseMLService builds the process-wide predictor from the recognised
// configuration knobs. The empty-history feature defaults are deployment
// profile choices: 0 for the demo profile, around 0.8/0.75 for the full one.
func InitialiseMLService() {
	PredictionService = &Predictor{
		Extractor: &Extractor{
			DefaultAttendanceRate: envFloat("FEATURE_DEFAULT_ATTENDANCE_RATE", 0),
			DefaultAvgScore:       envFloat("FEATURE_DEFAULT_AVG_SCORE", 0),
		},
		Engine: NewEngine(os.Getenv("MODELS_DIR")),
		Recommender: &Recommender{
			WeakSubjectThreshold:   envFloat("WEAK_SUBJECT_THRESHOLD", 0.6),
			VarianceAlertThreshold: envFloat("RISK_VARIANCE_ALERT_THRESHOLD", 0.3),
			FailureAlertThreshold:  envFloat("RISK_FAILURE_ALERT_THRESHOLD", 0.7),
			DropoutAlertThreshold:  envFloat("RISK_DROPOUT_ALERT_THRESHOLD", 0.5),
		},
	}
	restoreSavedSettings()
}

func restoreSavedSettings() {
	saved := cache.Cache.FindOne(SettingsCacheKey)
	if saved == nil {
		return
	}
	var settings Settings
	if err := json.Unmarshal([]byte(*saved), &settings); err != nil {
		logger.Warning("ignoring unparseable saved prediction settings", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	PredictionService.ApplySettings(settings)
	logger.Info("saved prediction settings restored")
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Warning("invalid float env value, using fallback", logger.LoggerOptions{
			Key:  "env",
			Data: key,
		})
		return fallback
	}
	return value
}
