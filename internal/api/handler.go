package api

import (
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"hostel-booking-backend/internal/auth"
	"hostel-booking-backend/internal/booking"
	"hostel-booking-backend/internal/notification"
	"hostel-booking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	engine   *booking.Engine
	auth     *auth.Service
	sessions *auth.SessionStore
	pool     *notification.WorkerPool
	webpush  *webpush.Options
}

// NewHandler creates a new API handler. pool and webpushOptions may be nil
// when the notification subsystem is not configured.
func NewHandler(s store.Store, engine *booking.Engine, authSvc *auth.Service, sessions *auth.SessionStore, pool *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:    s,
		engine:   engine,
		auth:     authSvc,
		sessions: sessions,
		pool:     pool,
		webpush:  webpushOptions,
	}
}

// fail maps engine errors onto HTTP responses. Expected business failures
// become 400s with their message; anything else is a storage failure and
// stays opaque to the client.
func (h *Handler) fail(c *gin.Context, err error) {
	if booking.IsDomainErr(err) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "database error"})
}
