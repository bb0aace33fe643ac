package ml

import "time"

// PredictionInput is everything the orchestrator needs about one student,
// already resolved by the caller. Nothing here touches the network or disk.
type PredictionInput struct {
	EnrollmentDate time.Time
	Attendance     []AttendanceRecord
	Academics      []AcademicScore
	AsOf           time.Time
}

// Prediction is the assembled result of one scoring invocation.
type Prediction struct {
	GPAPrediction             float64
	FailureRisk               float64
	DropoutRisk               float64
	AttendanceImpact          float64
	PreviousPerformanceImpact float64
	Recommendations           string
	WeakSubjects              []WeakSubject
	FallbackUsed              bool

	Features FeatureVector
}

// Predictor composes the extractor, scoring engine and recommender.
type Predictor struct {
	Extractor   *Extractor
	Engine      *Engine
	Recommender *Recommender
}

func (p *Predictor) Predict(input PredictionInput) (*Prediction, error) {
	features, err := p.Extractor.Extract(input.EnrollmentDate, input.Attendance, input.Academics, input.AsOf)
	if err != nil {
		return nil, err
	}

	scores := p.Engine.Score(*features)

	subjectAverages, err := SubjectAverages(input.Academics)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		GPAPrediction:             scores.GPAPrediction,
		FailureRisk:               scores.FailureRisk,
		DropoutRisk:               scores.DropoutRisk,
		AttendanceImpact:          features.AttendanceRate,
		PreviousPerformanceImpact: features.AvgScore,
		Recommendations:           p.Recommender.Recommend(*features, scores),
		WeakSubjects:              p.Recommender.WeakSubjects(subjectAverages),
		FallbackUsed:              scores.FallbackUsed,
		Features:                  *features,
	}, nil
}
