package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrConnectivity marks failures to reach the creation endpoint or to read
// its answer.
var ErrConnectivity = errors.New("creation endpoint unreachable")

// APIError is an error response from the creation endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("creation endpoint returned %d: %s", e.StatusCode, e.Message)
}

// APIClient posts submissions to the charter creation endpoint
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client for the API served at baseURL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *APIClient) Create(ctx context.Context, sub Submission) (int64, error) {
	jsonData, err := json.Marshal(sub)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal submission: %w", err)
	}

	url := c.baseURL + "/api/projetos"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", ErrConnectivity, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var created struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(body, &created); err != nil {
			return 0, fmt.Errorf("%w: decode response: %v", ErrConnectivity, err)
		}
		return created.ID, nil
	}

	var errResp struct {
		Error string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &errResp); err == nil {
		msg = errResp.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return 0, &APIError{StatusCode: resp.StatusCode, Message: msg}
}
