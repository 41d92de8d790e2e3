package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnalyzeChannelParsesReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze-channel" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["channelName"] != "Veritasium" {
			t.Errorf("channelName = %q", payload["channelName"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SoloReport{
			ChannelName: "Veritasium",
			Stats:       ChannelStats{Subscribers: "14.2M", TotalVideos: "380"},
			Sources:     []Source{{Title: "About page", URI: "https://youtube.com/@veritasium"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	report, err := c.AnalyzeChannel(context.Background(), "Veritasium")
	if err != nil {
		t.Fatalf("AnalyzeChannel: %v", err)
	}
	if report.ChannelName != "Veritasium" || report.Stats.Subscribers != "14.2M" {
		t.Errorf("report = %+v", report)
	}
	if len(report.Sources) != 1 {
		t.Errorf("sources = %d, want 1", len(report.Sources))
	}
}

func TestAnalyzeChannelServerMessagePreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Channel name is required"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.AnalyzeChannel(context.Background(), "")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Message != "Channel name is required" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", DefaultSoloError},
		{"empty object", "{}", DefaultSoloError},
		{"not json", "<html>bad gateway</html>", DefaultSoloError},
		{"blank error field", `{"error": ""}`, DefaultSoloError},
		{"server message", `{"error": "quota exhausted"}`, "quota exhausted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage([]byte(tt.body), DefaultSoloError); got != tt.want {
				t.Errorf("errorMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestRunBattleRejectsBadVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(BattleReport{
			Verdict: Verdict{Winner: "Somebody Else"},
			Scores: []ChannelScore{
				{ChannelName: "MrBeast", Overall: 91},
				{ChannelName: "PewDiePie", Overall: 84},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.RunBattle(context.Background(), []string{"MrBeast", "PewDiePie"})
	if err == nil {
		t.Fatal("want error for winner outside the scored set")
	}
	if !strings.Contains(err.Error(), "Somebody Else") {
		t.Errorf("err = %v", err)
	}
}

func TestAnalyzeTruthFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.AnalyzeTruth(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != DefaultTruthError {
		t.Errorf("message = %q, want %q", apiErr.Message, DefaultTruthError)
	}
}

func TestPostCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(srv.URL, srv.Client(), nil)
	if _, err := c.AnalyzeChannel(ctx, "whoever"); err == nil {
		t.Fatal("want error for cancelled context")
	}
}

func TestMessageHelper(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"api error", &APIError{Status: 500, Message: "model overloaded"}, "model overloaded"},
		{"api error blank", &APIError{Status: 502}, DefaultBattleError},
		{"plain error", context.DeadlineExceeded, context.DeadlineExceeded.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, DefaultBattleError); got != tt.want {
				t.Errorf("Message = %q, want %q", got, tt.want)
			}
		})
	}
}
