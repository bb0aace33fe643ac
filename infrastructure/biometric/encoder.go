package biometric

import (
	"encoding/json"
	"errors"
	"fmt"

	"smartedu.io/infrastructure/biometric/types"
	"smartedu.io/infrastructure/logger"
	"smartedu.io/infrastructure/network"
	"github.com/google/uuid"
)

// EncoderClient talks to the face encoder service, which detects faces in an
// image and returns one embedding per face. All image decoding happens on the
// encoder side; this process only ever sees embeddings.
type EncoderClient struct {
	Network *network.NetworkController
}

func NewEncoderClient(baseURL string) *EncoderClient {
	return &EncoderClient{Network: network.NewNetworkController(baseURL)}
}

func (ec *EncoderClient) EncodeFaces(imageRef string) ([]types.Embedding, error) {
	requestBody := types.EncodeRequest{
		Image:     imageRef,
		RequestID: uuid.NewString(),
	}

	response, statusCode, err := ec.Network.Post("/encode-faces", &map[string]string{}, requestBody)
	if err != nil {
		logger.Error("error calling the face encoder service", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	if statusCode == nil || *statusCode != 200 {
		logger.Error("face encoding failed with status code", logger.LoggerOptions{
			Key:  "status_code",
			Data: statusCode,
		})
		return nil, fmt.Errorf("face encoder returned an unexpected status")
	}

	var result types.EncodeResponse
	if err := json.Unmarshal(*response, &result); err != nil {
		logger.Error("error unmarshaling face encoder response", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	if !result.Success {
		message := "face encoding failed"
		if result.Error != nil {
			message = *result.Error
		}
		return nil, errors.New(message)
	}

	embeddings := make([]types.Embedding, 0, len(result.Embeddings))
	for _, embedding := range result.Embeddings {
		embeddings = append(embeddings, types.Embedding(embedding))
	}
	return embeddings, nil
}
