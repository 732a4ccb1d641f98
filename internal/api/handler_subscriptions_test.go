package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupSubscriptionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(nil, nil, nil, nil, nil, nil)
	r.PUT("/api/subscriptions", handler.PutSubscription)
	return r
}

func TestPutSubscriptionRejectsEmptyBody(t *testing.T) {
	router := setupSubscriptionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/subscriptions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetVAPIDPublicKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unconfigured", func(t *testing.T) {
		r := gin.New()
		handler := NewHandler(nil, nil, nil, nil, nil, nil)
		r.GET("/api/vapid_public_key", handler.GetVAPIDPublicKey)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/vapid_public_key", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("configured", func(t *testing.T) {
		r := gin.New()
		handler := NewHandler(nil, nil, nil, nil, nil, &webpush.Options{VAPIDPublicKey: "test-key"})
		r.GET("/api/vapid_public_key", handler.GetVAPIDPublicKey)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/vapid_public_key", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "test-key")
	})
}
