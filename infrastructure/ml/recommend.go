package ml

import "strings"

const OnTrackMessage = "Continue current performance"

// WeakSubject is a subject whose aggregate normalised average falls below the
// weak-subject threshold.
type WeakSubject struct {
	Subject  string  `json:"subject"`
	AvgScore float64 `json:"avg_score"`
}

// Recommender turns a feature vector and risk scores into advisory text. The
// rules are a fixed, ordered list; each appends its message independently and
// the triggered messages are joined with "; ".
type Recommender struct {
	WeakSubjectThreshold   float64
	VarianceAlertThreshold float64
	FailureAlertThreshold  float64
	DropoutAlertThreshold  float64
}

type recommendationInput struct {
	features FeatureVector
	scores   RiskScores
}

type rule struct {
	triggered func(recommendationInput) bool
	message   string
}

func (r *Recommender) rules() []rule {
	return []rule{
		{
			triggered: func(in recommendationInput) bool { return in.features.AttendanceRate < 0.8 },
			message:   "Improve attendance rate - attend classes regularly",
		},
		{
			triggered: func(in recommendationInput) bool { return in.features.AvgScore < 0.6 },
			message:   "Focus on improving academic performance - seek additional help",
		},
		{
			triggered: func(in recommendationInput) bool { return in.scores.FailureRisk > r.FailureAlertThreshold },
			message:   "High failure risk detected - immediate intervention required",
		},
		{
			triggered: func(in recommendationInput) bool { return in.scores.DropoutRisk > r.DropoutAlertThreshold },
			message:   "Consider counseling services to address challenges",
		},
		{
			triggered: func(in recommendationInput) bool { return in.features.ScoreVariance > r.VarianceAlertThreshold },
			message:   "Inconsistent performance across subjects - focus on weak areas",
		},
	}
}

// Recommend evaluates the rules in order and joins the triggered messages.
func (r *Recommender) Recommend(features FeatureVector, scores RiskScores) string {
	in := recommendationInput{features: features, scores: scores}
	messages := []string{}
	for _, rule := range r.rules() {
		if rule.triggered(in) {
			messages = append(messages, rule.message)
		}
	}
	if len(messages) == 0 {
		return OnTrackMessage
	}
	return strings.Join(messages, "; ")
}

// WeakSubjects filters the subject averages below the threshold, preserving
// first-appearance order.
func (r *Recommender) WeakSubjects(subjectAverages []SubjectAverage) []WeakSubject {
	weak := []WeakSubject{}
	for _, average := range subjectAverages {
		if average.AvgScore < r.WeakSubjectThreshold {
			weak = append(weak, WeakSubject{Subject: average.Subject, AvgScore: average.AvgScore})
		}
	}
	return weak
}
