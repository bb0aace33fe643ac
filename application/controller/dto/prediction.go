package dto

type PredictPerformanceDTO struct {
	Semester *string `json:"semester" validate:"omitempty,semester"`
}
