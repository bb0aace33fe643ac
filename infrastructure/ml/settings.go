package ml

// Settings are the scoring knobs an administrator may tune at runtime. They
// cover the recommender thresholds and the empty-history feature defaults;
// the face matching thresholds stay environment-only because changing them
// invalidates the loaded gallery calibration.
type Settings struct {
	DefaultAttendanceRate  float64 `json:"defaultAttendanceRate"`
	DefaultAvgScore        float64 `json:"defaultAvgScore"`
	WeakSubjectThreshold   float64 `json:"weakSubjectThreshold"`
	VarianceAlertThreshold float64 `json:"varianceAlertThreshold"`
	FailureAlertThreshold  float64 `json:"failureAlertThreshold"`
	DropoutAlertThreshold  float64 `json:"dropoutAlertThreshold"`
}

func (p *Predictor) CurrentSettings() Settings {
	return Settings{
		DefaultAttendanceRate:  p.Extractor.DefaultAttendanceRate,
		DefaultAvgScore:        p.Extractor.DefaultAvgScore,
		WeakSubjectThreshold:   p.Recommender.WeakSubjectThreshold,
		VarianceAlertThreshold: p.Recommender.VarianceAlertThreshold,
		FailureAlertThreshold:  p.Recommender.FailureAlertThreshold,
		DropoutAlertThreshold:  p.Recommender.DropoutAlertThreshold,
	}
}

func (p *Predictor) ApplySettings(settings Settings) {
	p.Extractor.DefaultAttendanceRate = settings.DefaultAttendanceRate
	p.Extractor.DefaultAvgScore = settings.DefaultAvgScore
	p.Recommender.WeakSubjectThreshold = settings.WeakSubjectThreshold
	p.Recommender.VarianceAlertThreshold = settings.VarianceAlertThreshold
	p.Recommender.FailureAlertThreshold = settings.FailureAlertThreshold
	p.Recommender.DropoutAlertThreshold = settings.DropoutAlertThreshold
}
