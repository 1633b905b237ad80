// Package sources lists job postings from external ATS backends and
// normalizes them into the shared Posting shape. Adapter failures are
// non-fatal to a discovery run: the orchestrator logs and moves on.
package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"jobscout-bot/internal/models"
)

// ErrUnavailable marks any network, timeout, non-2xx, or malformed-payload
// failure from one backend. Callers treat it as skip-and-continue.
var ErrUnavailable = errors.New("source unavailable")

// Source is one ATS backend adapter.
type Source interface {
	Name() string
	List(ctx context.Context) ([]models.Posting, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// getJSON issues a GET against one backend and returns the raw body.
// Any failure, including a non-2xx status, wraps ErrUnavailable.
func getJSON(ctx context.Context, hc *http.Client, limiter *HostLimiter, url string) ([]byte, error) {
	if limiter != nil {
		if err := limiter.WaitURL(ctx, url); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "JobScout-Bot/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	return body, nil
}
