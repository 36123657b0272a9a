package common

import (
	"net/http"
	"reflect"
	"strings"

	"slack-delay-sender/src/infrastructure/helper"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CommonService interface {
	AppendValidationErrors(ctx *gin.Context, ve validator.ValidationErrors, intr interface{})
}

type commonService struct {
	validator helper.Validator
}

func NewCommonService(validator helper.Validator) CommonService {
	return &commonService{
		validator: validator,
	}
}

type ErrorMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppendValidationErrors aborts with 400 and the relay's failure shape. The first
// field error doubles as the single "error" string so clients that only read
// that key still get something readable.
func (service *commonService) AppendValidationErrors(ctx *gin.Context, ve validator.ValidationErrors, intr interface{}) {
	out := make([]ErrorMsg, len(ve))

	for i, fe := range ve {
		name, ok := jsonTag(intr, fe.Field())
		if !ok {
			name = fe.Field()
		}
		out[i] = ErrorMsg{name, service.validator.GetErrorMsg(fe)}
	}

	summary := "invalid request"
	if len(out) > 0 {
		summary = out[0].Field + ": " + out[0].Message
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   summary,
		"errors":  out,
	})
}

func jsonTag(v interface{}, fieldName string) (string, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "", false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", false
	}
	sf, ok := t.FieldByName(fieldName)
	if !ok {
		return "", false
	}
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	return strings.Split(tag, ",")[0], true
}
