package di

import (
	"context"
	"testing"

	messageUseCase "slack-delay-sender/src/application/usecases/message"
	domainWebhook "slack-delay-sender/src/domain/webhook"
	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) Post(ctx context.Context, url string, text string) (*domainWebhook.PostResult, error) {
	args := m.Called(ctx, url, text)
	result, _ := args.Get(0).(*domainWebhook.PostResult)
	return result, args.Error(1)
}

func setupLogger(t *testing.T) *logger.Logger {
	loggerInstance, err := logger.NewLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return loggerInstance
}

func TestSetupDependencies(t *testing.T) {
	t.Setenv("WEBHOOK_TIMEOUT", "3s")

	appContext, err := SetupDependencies(setupLogger(t))

	assert.NoError(t, err)
	assert.NotNil(t, appContext.Logger)
	assert.NotNil(t, appContext.SendController)
	assert.NotNil(t, appContext.CommonService)
	assert.NotNil(t, appContext.WebhookService)
	assert.NotNil(t, appContext.MessageUseCase)
}

func TestNewTestApplicationContext_UsesMock(t *testing.T) {
	mockWebhook := new(MockWebhookService)
	mockWebhook.On("Post", mock.Anything, "https://hooks.example/abc", "hi").
		Return(&domainWebhook.PostResult{StatusCode: 200, StatusText: "OK"}, nil).Once()

	appContext := NewTestApplicationContext(mockWebhook, setupLogger(t))
	assert.Same(t, mockWebhook, appContext.WebhookService)

	resp, err := appContext.MessageUseCase.SendMessage(context.Background(), &messageUseCase.MessageRequest{
		Text:    "hi",
		Webhook: "https://hooks.example/abc",
	})
	assert.NoError(t, err)
	assert.True(t, resp.Delivered)
	mockWebhook.AssertExpectations(t)
}

