package mychits

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client represents a MyChits core API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new MyChits core API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// APIError is returned for non-2xx upstream responses. Message carries the
// server-provided message when the body was JSON, otherwise a generic
// status-code message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API returned status %d: %s", e.StatusCode, e.Message)
}

// doJSON issues a request against the API and decodes the JSON response into out.
func (c *Client) doJSON(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response from %s: %v, body: %s", path, err, string(respBody))
		}
	}
	return nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	return c.doJSON(http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(path string, payload, out interface{}) error {
	return c.doJSON(http.MethodPost, path, payload, out)
}

// extractMessage pulls a human-readable message out of an error response body.
func extractMessage(body []byte, statusCode int) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return http.StatusText(statusCode)
}
