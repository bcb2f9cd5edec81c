package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"pharmadesk/infrastructure/diag"
)

// FailureRecorder receives a diagnostic record for every failed call.
type FailureRecorder interface {
	RecordFailure(ctx context.Context, f diag.Failure)
}

// Client talks to the pharmacy backend. One call issues exactly one request
// and awaits a single response; failures are recorded to the diagnostic log
// and returned to the caller, never swallowed.
type Client struct {
	baseURL string
	httpc   *http.Client
	diag    FailureRecorder
}

// NewClient builds a client for the given backend root (including the
// version prefix). recorder may be nil.
func NewClient(baseURL string, recorder FailureRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		diag:    recorder,
	}
}

// Error is a failed backend call. Error() is exactly the user-facing message
// recovered from the response.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// call performs one request. The response body is always read as text first:
// error bodies may be JSON, plain text, or HTML. A success response with an
// empty body leaves out untouched (empty result); a success body that fails
// to parse is treated as no data rather than a hard failure.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		apiErr := &Error{Op: op, Message: err.Error()}
		c.record(ctx, op, method, path, 0, apiErr.Message, requestID)
		return apiErr
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &Error{Op: op, StatusCode: resp.StatusCode, Message: err.Error()}
		c.record(ctx, op, method, path, resp.StatusCode, apiErr.Message, requestID)
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, text),
		}
		c.record(ctx, op, method, path, resp.StatusCode, apiErr.Message, requestID)
		return apiErr
	}

	if out == nil || len(text) == 0 {
		return nil
	}
	if err := json.Unmarshal(text, out); err != nil {
		slog.Warn("api: unparseable success body treated as empty",
			slog.String("op", op), slog.Any("err", err))
	}
	return nil
}

func (c *Client) record(ctx context.Context, op, method, path string, status int, message, requestID string) {
	if c.diag == nil {
		return
	}
	c.diag.RecordFailure(ctx, diag.Failure{
		Op:         op,
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    message,
		RequestID:  requestID,
	})
}

var messagePattern = regexp.MustCompile(`"message"\s*:\s*"([^"]*)"`)

// errorMessage recovers a readable failure reason from an error body.
// Three tiers: a JSON message field, a pattern match against the raw text,
// then the raw body itself or a generic status message.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	if m := messagePattern.FindSubmatch(body); m != nil && len(m[1]) > 0 {
		return string(m[1])
	}

	if strings.TrimSpace(string(body)) != "" {
		return string(body)
	}
	return fmt.Sprintf("HTTP error %d", status)
}
