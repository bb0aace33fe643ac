package ml

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// AttendanceRecord is the slice of an attendance row the extractor needs.
type AttendanceRecord struct {
	Subject string
	Status  string
	Date    time.Time
}

// AcademicScore is the slice of an academic record the extractor needs.
type AcademicScore struct {
	Subject  string
	Score    float64
	MaxScore float64
}

// FeatureVector is the fixed-shape model input derived from a student's
// history. It is purely a function of the records and the reference date.
type FeatureVector struct {
	AttendanceRate         float64 `json:"attendance_rate"`
	AvgScore               float64 `json:"avg_score"`
	EnrollmentDurationDays float64 `json:"enrollment_duration_days"`
	NumSubjects            float64 `json:"num_subjects"`
	ScoreVariance          float64 `json:"score_variance"`
}

// SubjectAverage is a subject's mean normalised score, in first-appearance
// order of the subject in the academic records.
type SubjectAverage struct {
	Subject  string
	AvgScore float64
}

// Extractor computes feature vectors. The empty-history defaults differ
// between deployment profiles, so they are injected rather than hardcoded.
type Extractor struct {
	DefaultAttendanceRate float64
	DefaultAvgScore       float64
}

// Extract computes the feature vector for one student as of the given date.
// Identical inputs always produce an identical vector.
func (e *Extractor) Extract(enrollmentDate time.Time, attendance []AttendanceRecord, academics []AcademicScore, asOf time.Time) (*FeatureVector, error) {
	enrollmentDuration := asOf.Sub(enrollmentDate).Hours() / 24
	if enrollmentDuration < 0 {
		return nil, fmt.Errorf("%w: enrollment date %s is after the reference date %s",
			ErrInvalidInput, enrollmentDate.Format("2006-01-02"), asOf.Format("2006-01-02"))
	}

	attendanceRate := e.DefaultAttendanceRate
	if len(attendance) > 0 {
		present := 0
		for _, record := range attendance {
			if record.Status == StatusPresent {
				present++
			}
		}
		attendanceRate = float64(present) / float64(len(attendance))
	}

	avgScore := e.DefaultAvgScore
	if len(academics) > 0 {
		total := 0.0
		for _, record := range academics {
			normalised, err := normaliseScore(record)
			if err != nil {
				return nil, err
			}
			total += normalised
		}
		avgScore = total / float64(len(academics))
	}

	subjectAverages, err := SubjectAverages(academics)
	if err != nil {
		return nil, err
	}

	return &FeatureVector{
		AttendanceRate:         attendanceRate,
		AvgScore:               avgScore,
		EnrollmentDurationDays: enrollmentDuration,
		NumSubjects:            float64(len(subjectAverages)),
		ScoreVariance:          populationVariance(subjectAverages),
	}, nil
}

// SubjectAverages groups academic records by subject name and returns each
// subject's mean normalised score, ordered by the subject's first appearance.
func SubjectAverages(academics []AcademicScore) ([]SubjectAverage, error) {
	order := []string{}
	totals := map[string]float64{}
	counts := map[string]int{}
	for _, record := range academics {
		normalised, err := normaliseScore(record)
		if err != nil {
			return nil, err
		}
		if _, seen := counts[record.Subject]; !seen {
			order = append(order, record.Subject)
		}
		totals[record.Subject] += normalised
		counts[record.Subject]++
	}

	averages := make([]SubjectAverage, 0, len(order))
	for _, subject := range order {
		averages = append(averages, SubjectAverage{
			Subject:  subject,
			AvgScore: totals[subject] / float64(counts[subject]),
		})
	}
	return averages, nil
}

func normaliseScore(record AcademicScore) (float64, error) {
	if record.MaxScore <= 0 {
		return 0, fmt.Errorf("%w: max score must be positive for subject %s", ErrInvalidInput, record.Subject)
	}
	if record.Score < 0 || record.Score > record.MaxScore {
		return 0, fmt.Errorf("%w: score %v outside [0, %v] for subject %s", ErrInvalidInput, record.Score, record.MaxScore, record.Subject)
	}
	return record.Score / record.MaxScore, nil
}

func populationVariance(averages []SubjectAverage) float64 {
	if len(averages) == 0 {
		return 0
	}
	mean := 0.0
	for _, avg := range averages {
		mean += avg.AvgScore
	}
	mean /= float64(len(averages))

	variance := 0.0
	for _, avg := range averages {
		diff := avg.AvgScore - mean
		variance += diff * diff
	}
	return variance / float64(len(averages))
}
