package biometric

import (
	"fmt"
	"math"

	"smartedu.io/infrastructure/biometric/types"
)

// Matcher resolves query embeddings against a gallery snapshot under a
// two-gate acceptance policy: the same-person gate (distance within
// compareThreshold) and the distance gate (distance strictly below tolerance)
// must both hold. The gates are configured independently even though the
// defaults coincide; upstream deployments tune them separately.
type Matcher struct {
	gallery          *Gallery
	tolerance        float64
	compareThreshold float64
}

func NewMatcher(gallery *Gallery, tolerance float64, compareThreshold float64) *Matcher {
	return &Matcher{
		gallery:          gallery,
		tolerance:        tolerance,
		compareThreshold: compareThreshold,
	}
}

// Match resolves one query embedding. A nil result means no gallery entry was
// accepted; that is a legitimate negative, not an error.
func (m *Matcher) Match(query types.Embedding) (*types.MatchResult, error) {
	if len(query) != m.gallery.Dimensions() {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, m.gallery.Dimensions(), len(query))
	}

	entries := m.gallery.Snapshot()
	if len(entries) == 0 {
		return nil, nil
	}

	bestIndex := 0
	bestDistance := math.Inf(1)
	for i, entry := range entries {
		distance := euclideanDistance(query, entry.Embedding)
		if distance < bestDistance {
			bestDistance = distance
			bestIndex = i
		}
	}

	samePerson := bestDistance <= m.compareThreshold
	if !samePerson || bestDistance >= m.tolerance {
		return nil, nil
	}

	return &types.MatchResult{
		StudentID:  entries[bestIndex].StudentID,
		Confidence: 1 - bestDistance,
	}, nil
}

// MatchAll resolves every query embedding of a frame independently and
// collects the accepted results in query order. Two faces in the same frame
// may resolve to the same student; results are deliberately not deduplicated.
func (m *Matcher) MatchAll(queries []types.Embedding) ([]types.MatchResult, error) {
	results := []types.MatchResult{}
	for _, query := range queries {
		result, err := m.Match(query)
		if err != nil {
			return nil, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return results, nil
}

func euclideanDistance(a, b types.Embedding) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
