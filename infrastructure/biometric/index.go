package biometric

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"smartedu.io/application/repository"
	"smartedu.io/infrastructure/biometric/types"
	"smartedu.io/infrastructure/logger"
)

var ErrNoFaceDetected = errors.New("no face detected in reference image")

const embeddingDimensions = 128

// FaceRecognitionService owns the gallery and matcher. The gallery is loaded
// once at start up and only mutated through EnrollFace and RefreshGallery,
// both of which run under refreshLock so readers always see a complete
// snapshot.
type FaceRecognitionService struct {
	Gallery *Gallery
	Matcher *Matcher
	Encoder types.FaceEncoder

	refreshLock sync.Mutex
}

var FaceService *FaceRecognitionService

func InitialiseBiometricService() {
	FaceService = &FaceRecognitionService{
		Gallery: NewGallery(embeddingDimensions),
		Encoder: NewEncoderClient(os.Getenv("FACE_ENCODER_URL")),
	}
	FaceService.Matcher = NewMatcher(
		FaceService.Gallery,
		envFloat("FACE_MATCH_TOLERANCE", 0.6),
		envFloat("FACE_COMPARE_THRESHOLD", 0.6),
	)
	FaceService.RefreshGallery()
}

// RefreshGallery rebuilds the gallery from every student that has a reference
// photo on record.
func (fs *FaceRecognitionService) RefreshGallery() error {
	fs.refreshLock.Lock()
	defer fs.refreshLock.Unlock()

	students, err := repository.StudentRepo().FindMany(map[string]interface{}{
		"faceImageURL": map[string]interface{}{"$ne": nil},
		"deletedAt":    nil,
	})
	if err != nil {
		logger.Error("could not fetch students for gallery refresh", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	sources := make([]types.GallerySource, 0, len(*students))
	for _, student := range *students {
		sources = append(sources, types.GallerySource{
			StudentID: student.ID,
			ImageURL:  *student.FaceImageURL,
		})
	}
	fs.Gallery.Load(sources, fs.Encoder)
	return nil
}

// EnrollFace encodes a student's new reference photo and inserts or replaces
// their gallery entry. Unlike gallery loading, a photo without a detectable
// face is an error here so the admin uploading it finds out immediately.
func (fs *FaceRecognitionService) EnrollFace(studentID string, imageURL string) error {
	embeddings, err := fs.Encoder.EncodeFaces(imageURL)
	if err != nil {
		return err
	}
	if len(embeddings) == 0 {
		return ErrNoFaceDetected
	}

	fs.refreshLock.Lock()
	defer fs.refreshLock.Unlock()
	return fs.Gallery.Add(studentID, embeddings[0])
}

// RecogniseFrame encodes every face in a classroom frame and matches each one
// against the gallery.
func (fs *FaceRecognitionService) RecogniseFrame(imageRef string) ([]types.MatchResult, error) {
	embeddings, err := fs.Encoder.EncodeFaces(imageRef)
	if err != nil {
		return nil, err
	}
	return fs.Matcher.MatchAll(embeddings)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Warning("invalid float env value, using fallback", logger.LoggerOptions{
			Key:  "env",
			Data: key,
		})
		return fallback
	}
	return value
}
