package dto

import (
	"testing"

	"smartedu.io/infrastructure/validator"
)

func TestValidateCreateAcademicRecordDTO(t *testing.T) {
	tests := []struct {
		name    string
		payload CreateAcademicRecordDTO
		wantErr bool
	}{
		{
			name: "valid record",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "2025/1",
				AssessmentType: "exam",
				Score:          72,
				MaxScore:       100,
			},
			wantErr: false,
		},
		{
			name: "current semester alias",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "current",
				AssessmentType: "quiz",
				Score:          8,
				MaxScore:       10,
			},
			wantErr: false,
		},
		{
			name: "unknown assessment type",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "2025/1",
				AssessmentType: "viva",
				Score:          10,
				MaxScore:       20,
			},
			wantErr: true,
		},
		{
			name: "malformed semester",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "first-term",
				AssessmentType: "exam",
				Score:          10,
				MaxScore:       20,
			},
			wantErr: true,
		},
		{
			name: "zero max score",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "2025/1",
				AssessmentType: "exam",
				Score:          10,
				MaxScore:       0,
			},
			wantErr: true,
		},
		{
			name: "negative score",
			payload: CreateAcademicRecordDTO{
				StudentID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z1",
				SubjectID:      "01J0A9N2Q3R4S5T6V7W8X9Y0Z2",
				Semester:       "2025/1",
				AssessmentType: "exam",
				Score:          -3,
				MaxScore:       100,
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tc.payload)
			if tc.wantErr && errs == nil {
				t.Error("expected validation errors, got none")
			}
			if !tc.wantErr && errs != nil {
				t.Errorf("expected no validation errors, got %v", *errs)
			}
		})
	}
}

func TestValidateRegisterUserDTO(t *testing.T) {
	tests := []struct {
		name    string
		payload RegisterUserDTO
		wantErr bool
	}{
		{
			name:    "valid user",
			payload: RegisterUserDTO{Username: "jdoe", Email: "jdoe@smartedu.io", Password: "s3cret!pass", Role: "teacher"},
			wantErr: false,
		},
		{
			name:    "weak password",
			payload: RegisterUserDTO{Username: "jdoe", Email: "jdoe@smartedu.io", Password: "password", Role: "teacher"},
			wantErr: true,
		},
		{
			name:    "unknown role",
			payload: RegisterUserDTO{Username: "jdoe", Email: "jdoe@smartedu.io", Password: "s3cret!pass", Role: "registrar"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			payload: RegisterUserDTO{Username: "jdoe", Email: "not-an-email", Password: "s3cret!pass", Role: "admin"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validator.ValidatorInstance.ValidateStruct(tc.payload)
			if tc.wantErr && errs == nil {
				t.Error("expected validation errors, got none")
			}
			if !tc.wantErr && errs != nil {
				t.Errorf("expected no validation errors, got %v", *errs)
			}
		})
	}
}
