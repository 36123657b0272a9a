package send

import (
	"errors"
	"net/http"

	"slack-delay-sender/src/application/usecases/message"
	"slack-delay-sender/src/domain/common"
	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const messageSent = "Message sent!"

type ISendController interface {
	Message(c *gin.Context)
}

type SendController struct {
	commonService  common.CommonService
	messageUseCase message.IMessageUseCase
	Logger         *logger.Logger
}

func NewSendController(
	commonService common.CommonService,
	messageUseCase message.IMessageUseCase,
	loggerInstance *logger.Logger,
) ISendController {
	return &SendController{
		commonService:  commonService,
		messageUseCase: messageUseCase,
		Logger:         loggerInstance,
	}
}

// Message relays {text} to the webhook named in the request body.
func (c *SendController) Message(ctx *gin.Context) {
	var request MessageRequest
	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		_ = ctx.Error(err)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.Logger.Error("Validation errors occurred", zap.Any("errors", ve))
			c.commonService.AppendValidationErrors(ctx, ve, request)
			return
		}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, MessageResponse{Error: "Couldn't process request - invalid request body"})
		return
	}

	useCaseRequest := &message.MessageRequest{
		Text:    request.Text,
		Webhook: request.Webhook,
	}

	useCaseResponse, err := c.messageUseCase.SendMessage(ctx.Request.Context(), useCaseRequest)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Error: err.Error()})
		return
	}

	if !useCaseResponse.Delivered {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Error: useCaseResponse.StatusText})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Success: true, Message: messageSent})
}
