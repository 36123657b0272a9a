package helper

import (
	"fmt"

	logger "slack-delay-sender/src/infrastructure/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Validator turns validator field errors into user facing messages.
type Validator interface {
	GetErrorMsg(fe validator.FieldError) string
}

type fieldValidator struct {
	Logger *logger.Logger
}

func NewValidator(loggerInstance *logger.Logger) Validator {
	return &fieldValidator{Logger: loggerInstance}
}

func (v *fieldValidator) GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "url":
		return "Must be a valid URL"
	case "http_url":
		return "Must be a valid http or https URL"
	case "max":
		return fmt.Sprintf("Should be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Should be at least %s characters", fe.Param())
	}
	v.Logger.Debug("No message for validation tag", zap.String("tag", fe.Tag()), zap.String("field", fe.Field()))
	return "Unknown error"
}
