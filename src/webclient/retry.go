package webclient

import (
	"context"
	"time"
)

// AttemptFunc performs one HTTP attempt and reports the status, body and any
// transport error.
type AttemptFunc func() (status int, body []byte, err error)

// DoWithRetry retries the attempt on transient failures (429, 5xx, transport
// errors) with exponential backoff, capped at 30s between attempts. Validation
// failures and other 4xx responses are returned immediately.
func DoWithRetry(ctx context.Context, attempts int, initialDelay time.Duration, fn AttemptFunc) (int, []byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	if initialDelay <= 0 {
		initialDelay = 2 * time.Second
	}
	delay := initialDelay
	var (
		status int
		body   []byte
		err    error
	)
	for i := 0; i < attempts; i++ {
		status, body, err = fn()
		if err == nil && status != 429 && status < 500 {
			return status, body, nil
		}
		if i == attempts-1 {
			break
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return status, body, ctx.Err()
		case <-t.C:
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	return status, body, err
}
