package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	hasDigit := false
	hasSpecialChar := false

	for _, char := range password {
		if unicode.IsDigit(char) {
			hasDigit = true
		} else if !unicode.IsLetter(char) {
			hasSpecialChar = true
		}
	}

	return hasDigit && hasSpecialChar
}

func validateNameWithSpecialChars(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	regex := regexp.MustCompile(`^[\p{L}'\-]+$`)
	return regex.MatchString(name)
}

// Semesters are recorded as "<year>/<term>" e.g. "2025/2", or the literal
// "current" used by the prediction endpoint.
func validateSemester(fl validator.FieldLevel) bool {
	semester := fl.Field().String()
	if semester == "current" {
		return true
	}
	regex := regexp.MustCompile(`^\d{4}/[1-3]$`)
	return regex.MatchString(semester)
}
