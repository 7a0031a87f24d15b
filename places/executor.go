package places

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

const maxErrorBodyBytes = 512

// Executor performs the upstream network call. The underlying http.Client is
// safe to share across concurrent orchestrations; the executor holds no
// per-request state.
type Executor struct {
	client  *http.Client
	timeout time.Duration
}

// NewExecutor creates an executor with the configured request timeout. A nil
// client falls back to a fresh http.Client (tests inject their own).
func NewExecutor(cfg *Config, client *http.Client) *Executor {
	if client == nil {
		client = &http.Client{}
	}
	return &Executor{client: client, timeout: cfg.RequestTimeout}
}

// Execute performs the call described by spec and returns the raw response
// body. Cancellation of ctx aborts the in-flight call. Failures are translated
// into the documented taxonomy: timeouts become UpstreamTimeout, non-2xx
// statuses become UpstreamError with a truncated body. No retry is ever
// attempted here; the operations differ in idempotency and retrying a paid
// search risks silent double-billing.
func (e *Executor) Execute(ctx context.Context, spec *CallSpec) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var body io.Reader
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, newError(KindInvalidRequestShape, "failed to build upstream request: %v", err)
	}
	for name, value := range spec.Headers {
		req.Header.Set(name, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, newError(KindUpstreamTimeout, "upstream call exceeded %s", e.timeout)
		}
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &Error{Kind: KindUpstreamError, Message: "upstream call failed: " + err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamError, Message: "failed to read upstream response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Kind:           KindUpstreamError,
			Message:        "upstream rejected the call",
			UpstreamStatus: resp.StatusCode,
			Body:           truncate(string(payload), maxErrorBodyBytes),
		}
	}

	return payload, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
