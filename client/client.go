// Package client is a small typed client for the HTTP Methods service.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Client struct {
	http.Client
	Addr string
}

// APIError is a non-2xx answer decoded from the service error payload.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Health is the liveness payload of GET /health.
type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Health() (*Health, error) {
	h := &Health{}
	if err := c.do(http.MethodGet, "/health", nil, h); err != nil {
		return nil, err
	}

	return h, nil
}

// do runs one request against the service. A nil in skips the request body,
// a nil out discards the response body. Non-2xx answers come back as an
// *APIError carrying the decoded message.
func (c *Client) do(method, path string, in, out interface{}) error {
	var body io.Reader

	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}

		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.Addr+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
