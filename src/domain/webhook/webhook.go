package webhook

import "context"

// Core domain entities

// PostResult is what the upstream webhook answered.
type PostResult struct {
	StatusCode int
	StatusText string
}

// OK reports whether the upstream status is in the 2xx range.
func (r *PostResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IWebhookService posts a text message to an incoming-webhook URL.
// A non-nil error means no upstream status was obtained at all.
type IWebhookService interface {
	Post(ctx context.Context, url string, text string) (*PostResult, error)
}
