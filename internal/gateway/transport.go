package gateway

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport logs each outbound backend call as a structured line:
// method, path, status, and duration. Transport errors are logged too, since
// weather and places failures are deliberately swallowed upstream and the log
// is the only place they appear.
type loggingTransport struct {
	next http.RoundTripper
	log  *slog.Logger
}

// NewLoggingTransport wraps next (nil means http.DefaultTransport) so every
// request through it is logged via log.
func NewLoggingTransport(next http.RoundTripper, log *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	if err != nil {
		t.log.ErrorContext(req.Context(), "backend call failed",
			"method", req.Method,
			"path", req.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	t.log.InfoContext(req.Context(), "backend call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}
