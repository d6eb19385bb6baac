// Package transport owns the HTTP request plumbing shared by the auth and
// admin gateways: JSON encoding, bearer attachment, request IDs, and fault
// mapping. It never retries and never inspects token contents.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// APIError is the fault for an HTTP error status. Message is taken from the
// structured error body when the server sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Client issues single-attempt JSON requests against one backend base URL.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a transport client. baseURL must not end in a slash; paths are
// appended verbatim.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Do performs one request and decodes a 2xx JSON body into out. A bearer
// header is attached only when bearer is non-empty; it is never sent empty.
// Error statuses map to *APIError. Transport failures surface as the
// underlying error with no status attached.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the message field from a structured error body.
// Non-JSON bodies yield an empty message so the caller falls back to its
// action-specific text.
func errorMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
