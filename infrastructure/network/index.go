package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkController is a thin JSON HTTP client for service-to-service calls.
type NetworkController struct {
	BaseUrl string
	Client  *http.Client
}

func NewNetworkController(baseURL string) *NetworkController {
	return &NetworkController{
		BaseUrl: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (nc *NetworkController) Get(path string, headers *map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", nc.BaseUrl, path), nil)
	if err != nil {
		return nil, nil, err
	}
	return nc.send(req, headers)
}

func (nc *NetworkController) Post(path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s%s", nc.BaseUrl, path), bytes.NewBuffer(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return nc.send(req, headers)
}

func (nc *NetworkController) send(req *http.Request, headers *map[string]string) (*[]byte, *int, error) {
	if headers != nil {
		for key, value := range *headers {
			req.Header.Set(key, value)
		}
	}
	res, err := nc.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &responseBody, &res.StatusCode, nil
}
