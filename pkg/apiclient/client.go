// Package apiclient provides the HTTP client for the Dores REST API.
// It normalizes the several error-body shapes the backend produces into a
// single typed error and handles the JSON/multipart request plumbing.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Config holds the API client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs single HTTP calls against the API base URL. It does not
// retry; recovery policies live in AuthClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. A zero Timeout falls back to a
// conservative default so a hung call cannot block a user action forever.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("apiclient: BaseURL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// RequestError is the normalized shape of every non-2xx response. Status
// carries the HTTP status code so callers can branch on it instead of
// matching message substrings.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a RequestError with HTTP 401.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == http.StatusUnauthorized
}

// Get performs a GET request. Pass an empty token for public endpoints.
func (c *Client) Get(ctx context.Context, endpoint, token string, out interface{}) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, token, out)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, token string, out interface{}) error {
	return c.request(ctx, http.MethodPost, endpoint, body, token, out)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, token string, out interface{}) error {
	return c.request(ctx, http.MethodPut, endpoint, body, token, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint, token string, out interface{}) error {
	return c.request(ctx, http.MethodDelete, endpoint, nil, token, out)
}

// PostForm performs a POST request with a multipart form body built from
// fields.
func (c *Client) PostForm(ctx context.Context, endpoint string, fields map[string]string, token string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to build form field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form body: %w", err)
	}

	return c.do(ctx, http.MethodPost, endpoint, &buf, writer.FormDataContentType(), token, out)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body interface{}, token string, out interface{}) error {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	return c.do(ctx, method, endpoint, bodyReader, contentType, token, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	return decodeBody(resp, out)
}

// decodeBody parses a successful response. Bodies labeled JSON are decoded
// directly; anything else gets a best-effort JSON decode first because the
// backend sometimes mislabels JSON payloads, then falls back to raw text.
func decodeBody(resp *http.Response, out interface{}) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	responseType := resp.Header.Get("Content-Type")
	if strings.Contains(responseType, "application/json") {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
		return nil
	}

	if err := json.Unmarshal(raw, out); err == nil {
		return nil
	}
	if text, ok := out.(*string); ok {
		*text = string(raw)
		return nil
	}
	return fmt.Errorf("unexpected %s response body", responseType)
}
