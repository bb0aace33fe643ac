package types

// Embedding is a fixed-length face descriptor produced by the upstream encoder.
// It is immutable once computed.
type Embedding []float64

// GalleryEntry pairs an enrolled student with the embedding computed from
// their reference photo. Entries are keyed by student; a student has at most
// one entry.
type GalleryEntry struct {
	StudentID string
	Embedding Embedding
}

// GallerySource points the gallery loader at a student's reference photo.
type GallerySource struct {
	StudentID string
	ImageURL  string
}

// MatchResult is an accepted identification of one query embedding.
type MatchResult struct {
	StudentID  string  `json:"student_id"`
	Confidence float64 `json:"confidence"`
}

// FaceEncoder is the external detect-and-encode collaborator. It returns one
// embedding per detected face, in detection order, and an empty slice when the
// image contains no detectable face.
type FaceEncoder interface {
	EncodeFaces(imageRef string) ([]Embedding, error)
}

// EncodeRequest is the wire payload sent to the face encoder service.
// RequestID correlates encoder logs with ours.
type EncodeRequest struct {
	Image     string `json:"image"`
	RequestID string `json:"request_id"`
}

// EncodeResponse is the wire payload returned by the face encoder service.
type EncodeResponse struct {
	Success    bool        `json:"success"`
	Embeddings [][]float64 `json:"embeddings"`
	Error      *string     `json:"error"`
}
