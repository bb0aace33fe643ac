package entities

import (
	"time"

	"smartedu.io/application/utils"
)

// PerformancePrediction is written once per scoring invocation and never
// updated. WeakSubjects is stored as a JSON encoded array so the record can be
// returned to clients exactly as scored.
type PerformancePrediction struct {
	StudentID      string    `bson:"studentID" json:"studentID"`
	Semester       string    `bson:"semester" json:"semester"`
	PredictionDate time.Time `bson:"predictionDate" json:"predictionDate"`

	GPAPrediction float64 `bson:"gpaPrediction" json:"gpa_prediction"`
	FailureRisk   float64 `bson:"failureRisk" json:"failure_risk"`
	DropoutRisk   float64 `bson:"dropoutRisk" json:"dropout_risk"`

	AttendanceImpact          float64 `bson:"attendanceImpact" json:"attendance_impact"`
	PreviousPerformanceImpact float64 `bson:"previousPerformanceImpact" json:"previous_performance_impact"`

	Recommendations string `bson:"recommendations" json:"recommendations"`
	WeakSubjects    string `bson:"weakSubjects" json:"weak_subjects"`

	// FallbackUsed is an audit flag recording that at least one score came from
	// a heuristic rather than a trained model.
	FallbackUsed bool `bson:"fallbackUsed" json:"fallbackUsed"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model PerformancePrediction) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
		if model.PredictionDate.IsZero() {
			model.PredictionDate = now
		}
	}
	model.UpdatedAt = now
	return &model
}
