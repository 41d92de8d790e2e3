package webserver

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToRate(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected under the limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("fourth request allowed over a limit of 3")
	}
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("first client rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("second client throttled by the first client's usage")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request rejected")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request allowed inside the window")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request rejected after the window expired")
	}
}
