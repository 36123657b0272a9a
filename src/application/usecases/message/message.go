package message

import (
	"context"

	domainWebhook "slack-delay-sender/src/domain/webhook"
	logger "slack-delay-sender/src/infrastructure/logger"

	"go.uber.org/zap"
)

// MessageRequest represents a request to relay a message to a webhook
type MessageRequest struct {
	Text    string
	Webhook string
}

// MessageResponse represents the upstream outcome of a relayed message
type MessageResponse struct {
	Delivered  bool
	StatusCode int
	StatusText string
}

// IMessageUseCase defines the interface for message use cases
type IMessageUseCase interface {
	SendMessage(ctx context.Context, request *MessageRequest) (*MessageResponse, error)
}

// MessageUseCase implements the IMessageUseCase interface
type MessageUseCase struct {
	webhookService domainWebhook.IWebhookService
	Logger         *logger.Logger
}

// NewMessageUseCase creates a new MessageUseCase
func NewMessageUseCase(webhookService domainWebhook.IWebhookService, loggerInstance *logger.Logger) IMessageUseCase {
	return &MessageUseCase{
		webhookService: webhookService,
		Logger:         loggerInstance,
	}
}

// SendMessage makes exactly one outbound attempt. An error is returned only when
// the webhook could not be reached; an upstream non-2xx is a normal response.
func (m *MessageUseCase) SendMessage(ctx context.Context, request *MessageRequest) (*MessageResponse, error) {
	result, err := m.webhookService.Post(ctx, request.Webhook, request.Text)
	if err != nil {
		m.Logger.Error("Error posting to webhook", zap.Error(err))
		return nil, err
	}

	response := &MessageResponse{
		Delivered:  result.OK(),
		StatusCode: result.StatusCode,
		StatusText: result.StatusText,
	}

	if response.Delivered {
		m.Logger.Info("Message relayed", zap.Int("status", result.StatusCode))
	} else {
		m.Logger.Warn("Webhook rejected message",
			zap.Int("status", result.StatusCode),
			zap.String("statusText", result.StatusText))
	}

	return response, nil
}
