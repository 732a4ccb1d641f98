package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hostel-booking-backend/config"
	"hostel-booking-backend/internal/model"
	"hostel-booking-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, handler *Handler) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/register", handler.Register)
		api.POST("/login", handler.Login)
		api.POST("/logout", handler.Logout)

		// The public room listing is the hottest endpoint; short-lived
		// caching keeps it off the database between bookings.
		api.GET("/rooms", caching, handler.ListRooms)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		student := api.Group("")
		student.Use(mw.RequireRole(handler.sessions, model.RoleStudent))
		{
			student.POST("/book", handler.Book)
			student.GET("/myBooking", handler.MyBooking)
			student.DELETE("/myBooking", handler.CancelMyBooking)

			student.GET("/subscriptions", handler.GetSubscription)
			student.PUT("/subscriptions", handler.PutSubscription)
			student.DELETE("/subscriptions", handler.DeleteSubscription)
		}

		admin := api.Group("/admin")
		admin.Use(mw.RequireRole(handler.sessions, model.RoleAdmin))
		{
			admin.POST("/rooms", handler.AddRoom)
			admin.GET("/bookings", handler.ListBookings)
		}
	}

	return r
}
