package biometric

import (
	"errors"
	"testing"

	"smartedu.io/infrastructure/biometric/types"
)

type stubEncoder struct {
	responses map[string][]types.Embedding
	failures  map[string]error
}

func (se *stubEncoder) EncodeFaces(imageRef string) ([]types.Embedding, error) {
	if err, ok := se.failures[imageRef]; ok {
		return nil, err
	}
	return se.responses[imageRef], nil
}

func makeEmbedding(dimensions int, fill float64) types.Embedding {
	embedding := make(types.Embedding, dimensions)
	for i := range embedding {
		embedding[i] = fill
	}
	return embedding
}

func TestGalleryLoad(t *testing.T) {
	encoder := &stubEncoder{
		responses: map[string][]types.Embedding{
			"one-face.jpg":  {makeEmbedding(128, 0.1)},
			"two-faces.jpg": {makeEmbedding(128, 0.2), makeEmbedding(128, 0.9)},
			"no-faces.jpg":  {},
			"bad-dims.jpg":  {makeEmbedding(64, 0.3)},
		},
		failures: map[string]error{
			"unreadable.jpg": errors.New("fetch failed"),
		},
	}

	gallery := NewGallery(128)
	loaded, skipped := gallery.Load([]types.GallerySource{
		{StudentID: "s1", ImageURL: "one-face.jpg"},
		{StudentID: "s2", ImageURL: "two-faces.jpg"},
		{StudentID: "s3", ImageURL: "no-faces.jpg"},
		{StudentID: "s4", ImageURL: "unreadable.jpg"},
		{StudentID: "s5", ImageURL: "bad-dims.jpg"},
	}, encoder)

	if loaded != 2 {
		t.Errorf("expected 2 loaded entries, got %d", loaded)
	}
	if skipped != 3 {
		t.Errorf("expected 3 skipped entries, got %d", skipped)
	}

	entries := gallery.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected snapshot of 2 entries, got %d", len(entries))
	}
	if entries[0].StudentID != "s1" || entries[1].StudentID != "s2" {
		t.Errorf("unexpected snapshot order: %s, %s", entries[0].StudentID, entries[1].StudentID)
	}
	// multi-face reference images keep only the first detected face
	if entries[1].Embedding[0] != 0.2 {
		t.Errorf("expected first detected face embedding, got %v", entries[1].Embedding[0])
	}
}

func TestGalleryLoadReplacesWholesale(t *testing.T) {
	encoder := &stubEncoder{
		responses: map[string][]types.Embedding{
			"a.jpg": {makeEmbedding(128, 0.1)},
			"b.jpg": {makeEmbedding(128, 0.2)},
		},
	}

	gallery := NewGallery(128)
	gallery.Load([]types.GallerySource{{StudentID: "s1", ImageURL: "a.jpg"}}, encoder)
	gallery.Load([]types.GallerySource{{StudentID: "s2", ImageURL: "b.jpg"}}, encoder)

	entries := gallery.Snapshot()
	if len(entries) != 1 || entries[0].StudentID != "s2" {
		t.Errorf("expected wholesale replacement with s2 only, got %+v", entries)
	}
}

func TestGalleryAdd(t *testing.T) {
	gallery := NewGallery(128)

	if err := gallery.Add("s1", makeEmbedding(128, 0.5)); err != nil {
		t.Fatalf("unexpected error adding entry: %v", err)
	}
	if gallery.Size() != 1 {
		t.Fatalf("expected 1 entry, got %d", gallery.Size())
	}

	// same student replaces rather than duplicates
	if err := gallery.Add("s1", makeEmbedding(128, 0.7)); err != nil {
		t.Fatalf("unexpected error replacing entry: %v", err)
	}
	if gallery.Size() != 1 {
		t.Errorf("expected replacement to keep 1 entry, got %d", gallery.Size())
	}
	if got := gallery.Snapshot()[0].Embedding[0]; got != 0.7 {
		t.Errorf("expected replaced embedding value 0.7, got %v", got)
	}

	if err := gallery.Add("s2", makeEmbedding(64, 0.5)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestGallerySnapshotIsStable(t *testing.T) {
	gallery := NewGallery(128)
	gallery.Add("s1", makeEmbedding(128, 0.5))

	before := gallery.Snapshot()
	gallery.Add("s2", makeEmbedding(128, 0.6))

	if len(before) != 1 {
		t.Errorf("snapshot taken before Add must not grow, got %d entries", len(before))
	}
	if len(gallery.Snapshot()) != 2 {
		t.Errorf("expected new snapshot with 2 entries, got %d", gallery.Size())
	}
}
