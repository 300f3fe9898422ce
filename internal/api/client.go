// Package api talks to the storefront's remote boundaries: auth, orders,
// catalog, supplier and admin endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
)

// DefaultTimeout bounds every boundary call.
const DefaultTimeout = 10 * time.Second

// Client handles storefront API interactions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new API client. A nil m disables request metrics.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: m.Transport(http.DefaultTransport),
		},
	}
}

type request struct {
	op      string
	method  string
	path    string
	token   string
	body    any
	headers map[string]string
}

// errorBody is the optional failure payload of every endpoint.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes r and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.BaseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: failed to execute request: %w", r.op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.MalformedResponseError{Op: r.op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return apperrors.NewBoundaryError(r.op, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &apperrors.MalformedResponseError{Op: r.op, Err: err}
	}
	return nil
}
