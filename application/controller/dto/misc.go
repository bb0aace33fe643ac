package dto

type BackupRequestDTO struct {
	Note *string `json:"note" validate:"omitempty,max=200"`
}

type UpdateSettingsDTO struct {
	DefaultAttendanceRate  *float64 `json:"defaultAttendanceRate" validate:"omitempty,gte=0,lte=1"`
	DefaultAvgScore        *float64 `json:"defaultAvgScore" validate:"omitempty,gte=0,lte=1"`
	WeakSubjectThreshold   *float64 `json:"weakSubjectThreshold" validate:"omitempty,gte=0,lte=1"`
	VarianceAlertThreshold *float64 `json:"varianceAlertThreshold" validate:"omitempty,gte=0,lte=1"`
	FailureAlertThreshold  *float64 `json:"failureAlertThreshold" validate:"omitempty,gte=0,lte=1"`
	DropoutAlertThreshold  *float64 `json:"dropoutAlertThreshold" validate:"omitempty,gte=0,lte=1"`
}
