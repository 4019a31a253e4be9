package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/titaska/bitukai-client/internal/config"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// ErrNotFound is returned when the backend answers 404 for a resource lookup.
var ErrNotFound = errors.New("resource not found")

// RequestError carries the HTTP status and the message extracted from a
// failed response body.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Client is the HTTP client for the Bitukai backend. All persistence and
// business logic lives behind this API; the client only shapes requests and
// normalizes responses. Methods are safe for concurrent use: every call owns
// its own request and outcome, and the session token is guarded so a login
// concurrent with in-flight fetches stays well-defined.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  zerolog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client from the loaded configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBase, "/"),
		httpc:   &http.Client{Timeout: cfg.HTTPTimeout},
		logger:  log.With().Str("component", "api_client").Logger(),
	}
}

// SetToken installs the bearer token sent with subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request against the backend. A nil body sends no payload; a
// nil out discards the response body. Non-2xx statuses are converted into a
// *RequestError with the message extracted from the body (structured payload
// first, plain text fallback).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode).
		Msg("Request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		reqErr := &RequestError{
			StatusCode: resp.StatusCode,
			Message:    utils.ExtractErrorMessage(raw),
		}
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s %s: %s", ErrNotFound, method, path, reqErr.Message)
		}
		return reqErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
