package slack_webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domainWebhook "slack-delay-sender/src/domain/webhook"
	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// HTTPClient represents the functionality we need from an *http.Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client posts {"text": ...} payloads to Slack incoming webhooks.
type Client struct {
	c      HTTPClient
	Logger *logger.Logger
}

// NewClient returns a webhook client using a plain *http.Client with timeout.
func NewClient(timeout time.Duration, loggerInstance *logger.Logger) domainWebhook.IWebhookService {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, loggerInstance)
}

// NewClientWithHTTP lets callers supply their own transport.
func NewClientWithHTTP(c HTTPClient, loggerInstance *logger.Logger) domainWebhook.IWebhookService {
	return &Client{c: c, Logger: loggerInstance}
}

// Post sends one request. It never retries.
func (c *Client) Post(ctx context.Context, url string, text string) (*domainWebhook.PostResult, error) {
	payload, err := sjson.SetBytes([]byte(`{}`), "text", text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result := &domainWebhook.PostResult{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
	}

	c.Logger.Debug("Webhook answered",
		zap.Int("status", result.StatusCode),
		zap.String("statusText", result.StatusText))

	return result, nil
}

// statusText is the reason phrase of the status line, e.g. "Forbidden".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
