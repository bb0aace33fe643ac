package biometric

import (
	"errors"
	"fmt"
	"sync/atomic"

	"smartedu.io/infrastructure/biometric/types"
	"smartedu.io/infrastructure/logger"
)

var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Gallery holds the known student embeddings used for matching. Reads go
// through an atomically swapped snapshot, so a Load or Add in flight is never
// observed half applied. Load and Add themselves must be serialised by the
// caller.
type Gallery struct {
	dimensions int
	snapshot   atomic.Pointer[[]types.GalleryEntry]
}

func NewGallery(dimensions int) *Gallery {
	g := &Gallery{dimensions: dimensions}
	empty := []types.GalleryEntry{}
	g.snapshot.Store(&empty)
	return g
}

func (g *Gallery) Dimensions() int {
	return g.dimensions
}

// Load rebuilds the gallery wholesale from the given sources. Sources whose
// image cannot be read or contains no detectable face are skipped; a student
// without a usable reference photo is expected, not an error. When an image
// contains several faces only the first detected one is used.
func (g *Gallery) Load(sources []types.GallerySource, encoder types.FaceEncoder) (loaded int, skipped int) {
	next := make([]types.GalleryEntry, 0, len(sources))
	for _, source := range sources {
		embeddings, err := encoder.EncodeFaces(source.ImageURL)
		if err != nil {
			logger.Warning("skipping unreadable reference image during gallery load", logger.LoggerOptions{
				Key:  "studentID",
				Data: source.StudentID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			skipped++
			continue
		}
		if len(embeddings) == 0 {
			skipped++
			continue
		}
		embedding := embeddings[0]
		if len(embedding) != g.dimensions {
			logger.Warning("skipping reference embedding with unexpected dimensions", logger.LoggerOptions{
				Key:  "studentID",
				Data: source.StudentID,
			}, logger.LoggerOptions{
				Key:  "dimensions",
				Data: len(embedding),
			})
			skipped++
			continue
		}
		next = append(next, types.GalleryEntry{StudentID: source.StudentID, Embedding: embedding})
		loaded++
	}
	g.snapshot.Store(&next)
	logger.Info("embedding gallery loaded", logger.LoggerOptions{
		Key:  "loaded",
		Data: loaded,
	}, logger.LoggerOptions{
		Key:  "skipped",
		Data: skipped,
	})
	return loaded, skipped
}

// Add inserts or replaces the entry for one student by publishing a new
// snapshot.
func (g *Gallery) Add(studentID string, embedding types.Embedding) error {
	if len(embedding) != g.dimensions {
		return fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, g.dimensions, len(embedding))
	}
	current := *g.snapshot.Load()
	next := make([]types.GalleryEntry, 0, len(current)+1)
	replaced := false
	for _, entry := range current {
		if entry.StudentID == studentID {
			next = append(next, types.GalleryEntry{StudentID: studentID, Embedding: embedding})
			replaced = true
			continue
		}
		next = append(next, entry)
	}
	if !replaced {
		next = append(next, types.GalleryEntry{StudentID: studentID, Embedding: embedding})
	}
	g.snapshot.Store(&next)
	return nil
}

// Snapshot returns the current entries. The returned slice is never mutated
// after publication and must be treated as read-only.
func (g *Gallery) Snapshot() []types.GalleryEntry {
	return *g.snapshot.Load()
}

func (g *Gallery) Size() int {
	return len(*g.snapshot.Load())
}
