package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slack-delay-sender/src/infrastructure/di"
	logger "slack-delay-sender/src/infrastructure/logger"
	slackWebhook "slack-delay-sender/src/infrastructure/repository/slack-webhook"
	"slack-delay-sender/src/infrastructure/rest/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRelayRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := logger.NewNopLogger()
	appContext := di.NewTestApplicationContext(slackWebhook.NewClient(time.Second, l), l)

	router := gin.New()
	ApplicationRouter(router, appContext)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newRelayRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Service is running"}`, w.Body.String())
}

func TestSendMessage_BothMounts(t *testing.T) {
	var received []string
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		received = append(received, string(b))
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	router := newRelayRouter(t)

	for _, path := range []string{"/send-message", "/api/send-message"} {
		w := postJSON(router, path, map[string]string{"text": "From Bot: hi", "webhook": hook.URL})
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"success":true,"message":"Message sent!"}`, w.Body.String(), path)
	}

	require.Len(t, received, 2)
	for _, body := range received {
		assert.JSONEq(t, `{"text":"From Bot: hi"}`, body)
	}
}

func TestSendMessage_UpstreamRejected(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer hook.Close()

	w := postJSON(newRelayRouter(t), "/send-message", map[string]string{"text": "hi", "webhook": hook.URL})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not Found"}`, w.Body.String())
}

func TestSendMessage_UnreachableWebhook(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := hook.URL
	hook.Close()

	w := postJSON(newRelayRouter(t), "/send-message", map[string]string{"text": "hi", "webhook": url})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestSendMessage_MalformedWebhookURL(t *testing.T) {
	w := postJSON(newRelayRouter(t), "/send-message", map[string]string{"text": "hi", "webhook": "not a url"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendMessage_FailuresReachErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)
	l := &logger.Logger{Log: zap.New(core)}

	router := gin.New()
	router.Use(middlewares.ErrorHandler(l))
	router.Use(middlewares.CommonHeaders)
	ApplicationRouter(router, di.NewTestApplicationContext(slackWebhook.NewClient(time.Second, l), l))

	w := postJSON(router, "/send-message", map[string]string{"text": "hi", "webhook": "not a url"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("Request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/send-message", entries[0].ContextMap()["path"])
}
