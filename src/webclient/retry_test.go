package webclient

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoWithRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	status, body, err := DoWithRetry(context.Background(), 3, time.Millisecond, func() (int, []byte, error) {
		calls++
		return 200, []byte("ok"), nil
	})
	if err != nil || status != 200 || string(body) != "ok" {
		t.Fatalf("got %d %q %v", status, body, err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoWithRetryRetriesTransient(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
	}{
		{"server error", 503, nil},
		{"rate limited", 429, nil},
		{"transport error", 0, errors.New("connection refused")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			status, _, err := DoWithRetry(context.Background(), 3, time.Millisecond, func() (int, []byte, error) {
				calls++
				if calls < 3 {
					return tt.status, nil, tt.err
				}
				return 200, nil, nil
			})
			if err != nil || status != 200 {
				t.Fatalf("got %d %v", status, err)
			}
			if calls != 3 {
				t.Errorf("calls = %d, want 3", calls)
			}
		})
	}
}

func TestDoWithRetryClientErrorNotRetried(t *testing.T) {
	calls := 0
	status, _, err := DoWithRetry(context.Background(), 3, time.Millisecond, func() (int, []byte, error) {
		calls++
		return 400, []byte(`{"error":"bad input"}`), nil
	})
	if err != nil || status != 400 {
		t.Fatalf("got %d %v", status, err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	status, _, err := DoWithRetry(context.Background(), 2, time.Millisecond, func() (int, []byte, error) {
		calls++
		return 500, nil, nil
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if status != 500 || calls != 2 {
		t.Errorf("status = %d calls = %d, want 500 after 2 attempts", status, calls)
	}
}

func TestDoWithRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := DoWithRetry(ctx, 3, time.Hour, func() (int, []byte, error) {
		return 500, nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
