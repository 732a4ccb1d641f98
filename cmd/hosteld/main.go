package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"hostel-booking-backend/config"
	"hostel-booking-backend/internal/api"
	"hostel-booking-backend/internal/auth"
	"hostel-booking-backend/internal/booking"
	"hostel-booking-backend/internal/db"
	"hostel-booking-backend/internal/notification"
	"hostel-booking-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "hostel-backend ", log.LstdFlags)

	// Load configuration. Running without a config file uses the defaults,
	// which match the bundled sqlite setup.
	configPath := os.Getenv("CONFIG_PATH")
	var cfg *config.Config
	if configPath == "" {
		cfg = config.Default()
		logger.Println("CONFIG_PATH not set, using default configuration")
	} else {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	// Initialize database, run migrations and seed accounts/rooms.
	gormDB, err := db.Init(&cfg.Database, &cfg.Seed)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	engine := booking.NewEngine(appStore)

	sessions := auth.NewSessionStore()
	authSvc := auth.NewService(gormDB, sessions)
	logger.Println("session store initialized")

	// The notification subsystem only runs when VAPID keys are configured.
	var pool *notification.WorkerPool
	var webpushOptions *webpush.Options
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool = notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys not configured, availability notifications disabled")
	}

	handler := api.NewHandler(appStore, engine, authSvc, sessions, pool, webpushOptions)
	router := api.NewRouter(&cfg.Server, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
