package webclient

import (
	"net/http"
	"time"
)

// NewDefault returns an HTTP client with sane timeouts. AI-backed analysis
// endpoints are slow, so the default is generous.
func NewDefault(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
