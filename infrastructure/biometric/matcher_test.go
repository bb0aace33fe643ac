package biometric

import (
	"errors"
	"math"
	"testing"

	"smartedu.io/infrastructure/biometric/types"
)

func galleryWith(t *testing.T, entries ...types.GalleryEntry) *Gallery {
	t.Helper()
	gallery := NewGallery(128)
	for _, entry := range entries {
		if err := gallery.Add(entry.StudentID, entry.Embedding); err != nil {
			t.Fatalf("could not seed gallery: %v", err)
		}
	}
	return gallery
}

func TestMatchExactEmbedding(t *testing.T) {
	reference := makeEmbedding(128, 0.25)
	matcher := NewMatcher(galleryWith(t, types.GalleryEntry{StudentID: "7", Embedding: reference}), 0.6, 0.6)

	result, err := matcher.Match(reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a match for an identical embedding")
	}
	if result.StudentID != "7" {
		t.Errorf("expected student 7, got %s", result.StudentID)
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", result.Confidence)
	}
}

func TestMatchEmptyGallery(t *testing.T) {
	matcher := NewMatcher(NewGallery(128), 0.6, 0.6)

	result, err := matcher.Match(makeEmbedding(128, 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected no match against an empty gallery, got %+v", result)
	}
}

func TestMatchDimensionMismatch(t *testing.T) {
	matcher := NewMatcher(galleryWith(t, types.GalleryEntry{StudentID: "s1", Embedding: makeEmbedding(128, 0.1)}), 0.6, 0.6)

	_, err := matcher.Match(makeEmbedding(64, 0.1))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMatchTwoGateAcceptance(t *testing.T) {
	// a query at a known euclidean distance d from the reference: one
	// coordinate differs by d, the rest are equal.
	reference := makeEmbedding(128, 0.0)
	queryAtDistance := func(d float64) types.Embedding {
		query := makeEmbedding(128, 0.0)
		query[0] = d
		return query
	}

	tests := []struct {
		name             string
		distance         float64
		tolerance        float64
		compareThreshold float64
		wantMatch        bool
	}{
		{
			name:             "within both gates",
			distance:         0.4,
			tolerance:        0.6,
			compareThreshold: 0.6,
			wantMatch:        true,
		},
		{
			name:             "beyond tolerance is rejected regardless of compare gate",
			distance:         0.7,
			tolerance:        0.6,
			compareThreshold: 0.9,
			wantMatch:        false,
		},
		{
			name:             "compare gate rejects even when distance gate passes",
			distance:         0.5,
			tolerance:        0.6,
			compareThreshold: 0.4,
			wantMatch:        false,
		},
		{
			name:             "distance equal to tolerance is rejected",
			distance:         0.6,
			tolerance:        0.6,
			compareThreshold: 0.9,
			wantMatch:        false,
		},
		{
			name:             "distance equal to compare threshold passes the compare gate",
			distance:         0.5,
			tolerance:        0.6,
			compareThreshold: 0.5,
			wantMatch:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewMatcher(
				galleryWith(t, types.GalleryEntry{StudentID: "s1", Embedding: reference}),
				tt.tolerance,
				tt.compareThreshold,
			)
			result, err := matcher.Match(queryAtDistance(tt.distance))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantMatch && result == nil {
				t.Fatal("expected a match")
			}
			if !tt.wantMatch && result != nil {
				t.Fatalf("expected no match, got %+v", result)
			}
			if tt.wantMatch {
				wantConfidence := 1 - tt.distance
				if math.Abs(result.Confidence-wantConfidence) > 1e-9 {
					t.Errorf("expected confidence %v, got %v", wantConfidence, result.Confidence)
				}
			}
		})
	}
}

func TestMatchPicksNearestEntry(t *testing.T) {
	near := makeEmbedding(128, 0.0)
	near[0] = 0.1
	far := makeEmbedding(128, 0.0)
	far[0] = 0.5

	matcher := NewMatcher(galleryWith(t,
		types.GalleryEntry{StudentID: "far", Embedding: far},
		types.GalleryEntry{StudentID: "near", Embedding: near},
	), 0.6, 0.6)

	result, err := matcher.Match(makeEmbedding(128, 0.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.StudentID != "near" {
		t.Errorf("expected nearest entry to win, got %+v", result)
	}
}

func TestMatchAllKeepsDuplicates(t *testing.T) {
	reference := makeEmbedding(128, 0.25)
	matcher := NewMatcher(galleryWith(t, types.GalleryEntry{StudentID: "s1", Embedding: reference}), 0.6, 0.6)

	stranger := makeEmbedding(128, 0.9)
	results, err := matcher.MatchAll([]types.Embedding{reference, stranger, reference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// two faces in one frame resolving to the same student are both kept
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].StudentID != "s1" || results[1].StudentID != "s1" {
		t.Errorf("expected duplicate matches for s1, got %+v", results)
	}
}
