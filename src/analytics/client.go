package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tubetale/tubetale/src/logging"
	"github.com/tubetale/tubetale/src/webclient"
)

const maxAttempts = 3

// Client talks to the external analytics service over its three JSON
// endpoints. The service is an opaque collaborator; this client only owns the
// wire contract.
type Client struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = webclient.NewDefault(0)
	}
	if log == nil {
		log = logging.New("info")
	}
	return &Client{baseURL: baseURL, client: httpClient, log: log}
}

// AnalyzeChannel runs a single-channel analysis.
func (c *Client) AnalyzeChannel(ctx context.Context, channelName string) (*SoloReport, error) {
	var report SoloReport
	payload := map[string]string{"channelName": channelName}
	if err := c.post(ctx, "/api/analyze-channel", payload, &report, DefaultSoloError); err != nil {
		return nil, err
	}
	return &report, nil
}

// RunBattle compares 2-5 channels.
func (c *Client) RunBattle(ctx context.Context, channels []string) (*BattleReport, error) {
	var report BattleReport
	payload := map[string][]string{"channels": channels}
	if err := c.post(ctx, "/api/run-battle", payload, &report, DefaultBattleError); err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("battle report: %w", err)
	}
	return &report, nil
}

// AnalyzeTruth fact-checks one video.
func (c *Client) AnalyzeTruth(ctx context.Context, videoInput string) (*TruthReport, error) {
	var report TruthReport
	payload := map[string]string{"videoInput": videoInput}
	if err := c.post(ctx, "/api/analyze-truth", payload, &report, DefaultTruthError); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any, fallback string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	started := time.Now()
	status, respBody, err := webclient.DoWithRetry(ctx, maxAttempts, 2*time.Second, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, err
		}
		return resp.StatusCode, data, nil
	})
	if err != nil {
		if logging.IsRateLimit(err) {
			c.log.Warnf("analytics %s throttled after %s", path, time.Since(started).Round(time.Millisecond))
		}
		return err
	}

	if status < 200 || status > 299 {
		return &APIError{Status: status, Message: errorMessage(respBody, fallback)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	c.log.Debugf("analytics %s ok in %s", path, time.Since(started).Round(time.Millisecond))
	return nil
}

// errorMessage pulls the server-supplied message out of a failure body,
// falling back when the body is empty, malformed, or has no error key.
func errorMessage(body []byte, fallback string) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fallback
}
