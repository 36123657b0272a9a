package relay_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"slack-delay-sender/src/domain/schedule"
	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultRelayURL is where the relay listens when run with defaults.
const DefaultRelayURL = "http://localhost:5000/send-message"

// ErrMalformedResponse is returned when the relay body is not the expected JSON.
var ErrMalformedResponse = errors.New("malformed relay response")

// maxResponseBytes bounds how much of a relay reply is read.
const maxResponseBytes = 1 << 16

// HTTPClient represents the functionality we need from an *http.Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls the relay endpoint on behalf of the scheduler.
type Client struct {
	url    string
	c      HTTPClient
	Logger *logger.Logger
}

// NewClient targets relayURL with a plain *http.Client.
func NewClient(relayURL string, timeout time.Duration, loggerInstance *logger.Logger) schedule.IDispatcher {
	return NewClientWithHTTP(relayURL, &http.Client{Timeout: timeout}, loggerInstance)
}

func NewClientWithHTTP(relayURL string, c HTTPClient, loggerInstance *logger.Logger) schedule.IDispatcher {
	if relayURL == "" {
		relayURL = DefaultRelayURL
	}
	return &Client{url: relayURL, c: c, Logger: loggerInstance}
}

// Dispatch posts payload once. The relay's own status code is not used; its
// JSON body decides the outcome, so a 400 with {"success":false} is a normal
// result and not an error.
func (c *Client) Dispatch(ctx context.Context, payload schedule.Payload) (schedule.DispatchResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return schedule.DispatchResult{}, fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return schedule.DispatchResult{}, fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return schedule.DispatchResult{}, fmt.Errorf("call relay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return schedule.DispatchResult{}, fmt.Errorf("read relay response: %w", err)
	}

	if !gjson.ValidBytes(raw) {
		c.Logger.Error("Relay answered non-JSON", zap.Int("status", resp.StatusCode))
		return schedule.DispatchResult{}, ErrMalformedResponse
	}
	success := gjson.GetBytes(raw, "success")
	if !success.Exists() {
		c.Logger.Error("Relay answer has no success field", zap.Int("status", resp.StatusCode))
		return schedule.DispatchResult{}, ErrMalformedResponse
	}

	result := schedule.DispatchResult{
		Success:      success.Bool(),
		ErrorMessage: gjson.GetBytes(raw, "error").String(),
	}
	c.Logger.Debug("Relay answered",
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", result.Success),
		zap.String("error", result.ErrorMessage))
	return result, nil
}
