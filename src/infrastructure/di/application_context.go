package di

import (
	"time"

	messageUseCase "slack-delay-sender/src/application/usecases/message"
	"slack-delay-sender/src/domain/common"
	domainWebhook "slack-delay-sender/src/domain/webhook"
	"slack-delay-sender/src/infrastructure/helper"
	logger "slack-delay-sender/src/infrastructure/logger"
	slackWebhook "slack-delay-sender/src/infrastructure/repository/slack-webhook"
	sendController "slack-delay-sender/src/infrastructure/rest/controllers/send"
	"slack-delay-sender/src/infrastructure/utils"

	"go.uber.org/zap"
)

const defaultWebhookTimeout = 10 * time.Second

// ApplicationContext holds all relay dependencies and services
type ApplicationContext struct {
	Logger         *logger.Logger
	SendController sendController.ISendController
	CommonService  common.CommonService
	WebhookService domainWebhook.IWebhookService
	MessageUseCase messageUseCase.IMessageUseCase
}

// SetupDependencies creates a new application context with all dependencies
func SetupDependencies(loggerInstance *logger.Logger) (*ApplicationContext, error) {
	timeout := utils.GetEnvDuration("WEBHOOK_TIMEOUT", defaultWebhookTimeout)
	loggerInstance.Info("Outbound webhook timeout configured", zap.Duration("timeout", timeout))

	webhookService := slackWebhook.NewClient(timeout, loggerInstance)
	return newApplicationContext(webhookService, loggerInstance), nil
}

// NewTestApplicationContext creates an application context for testing with a mocked webhook
func NewTestApplicationContext(mockWebhookService domainWebhook.IWebhookService, loggerInstance *logger.Logger) *ApplicationContext {
	return newApplicationContext(mockWebhookService, loggerInstance)
}

func newApplicationContext(webhookService domainWebhook.IWebhookService, loggerInstance *logger.Logger) *ApplicationContext {
	validator := helper.NewValidator(loggerInstance)
	commonService := common.NewCommonService(validator)

	messageUC := messageUseCase.NewMessageUseCase(webhookService, loggerInstance)
	controller := sendController.NewSendController(commonService, messageUC, loggerInstance)

	return &ApplicationContext{
		Logger:         loggerInstance,
		SendController: controller,
		CommonService:  commonService,
		WebhookService: webhookService,
		MessageUseCase: messageUC,
	}
}
