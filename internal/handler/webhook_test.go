package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func verifyRouter(token string) *gin.Engine {
	h := NewWebhookHandler(nil, token, zap.NewNop())
	r := gin.New()
	r.GET("/webhook/event", h.Verify)
	r.POST("/webhook/event", h.HandleEvent)
	return r
}

func TestVerifyHandshake(t *testing.T) {
	r := verifyRouter("secret-token")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook/event?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())
}

func TestVerifyRejectsWrongToken(t *testing.T) {
	r := verifyRouter("secret-token")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook/event?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyRejectsWrongMode(t *testing.T) {
	r := verifyRouter("secret-token")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook/event?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleEventRejectsMalformedPayload(t *testing.T) {
	r := verifyRouter("secret-token")

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing required fields", `{"messageText": "hello"}`},
		{"missing sender", `{"pageId": "p1", "userId": "u1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/webhook/event", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
