package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventmate/api/internal/config"
	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/handler"
	"github.com/eventmate/api/internal/jobs"
	"github.com/eventmate/api/internal/middleware"
	"github.com/eventmate/api/internal/repository"
	"github.com/eventmate/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	// Start background counter reconciliation
	reconciler := jobs.NewCounterReconciler(eventRepo, 1*time.Hour)
	reconciler.Start()
	defer reconciler.Stop()

	// Initialize services
	eventService := service.NewEventService(eventRepo, guestRepo, vendorRepo)
	guestService := service.NewGuestService(guestRepo, eventRepo)
	vendorService := service.NewVendorService(vendorRepo, eventRepo)

	// Initialize handlers
	eventHandler := handler.NewEventHandler(eventService)
	guestHandler := handler.NewGuestHandler(guestService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	healthHandler := handler.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	// Root and health
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Event endpoints
	mux.HandleFunc("GET /events", eventHandler.ListEvents)
	mux.HandleFunc("POST /events", eventHandler.CreateEvent)
	mux.HandleFunc("GET /events/{eventId}", eventHandler.GetEvent)
	mux.HandleFunc("GET /events/{eventId}/details", eventHandler.GetEventDetails)
	mux.HandleFunc("GET /events/{eventId}/stats", eventHandler.GetEventStats)
	mux.HandleFunc("PUT /events/{eventId}", eventHandler.UpdateEvent)
	mux.HandleFunc("PATCH /events/{eventId}/status", eventHandler.UpdateEventStatus)
	mux.HandleFunc("DELETE /events/{eventId}", eventHandler.DeleteEvent)

	// Guest endpoints
	mux.HandleFunc("GET /guests/event/{eventId}", guestHandler.ListGuests)
	mux.HandleFunc("GET /guests/event/{eventId}/stats", guestHandler.GetGuestStats)
	mux.HandleFunc("GET /guests/{guestId}", guestHandler.GetGuest)
	mux.HandleFunc("POST /guests", guestHandler.AddGuest)
	mux.HandleFunc("POST /guests/bulk", guestHandler.AddGuestsBulk)
	mux.HandleFunc("PUT /guests/{guestId}", guestHandler.UpdateGuest)
	mux.HandleFunc("PATCH /guests/{guestId}/rsvp", guestHandler.UpdateGuestRSVP)
	mux.HandleFunc("DELETE /guests/{guestId}", guestHandler.DeleteGuest)
	mux.HandleFunc("DELETE /guests/event/{eventId}/all", guestHandler.DeleteAllGuests)

	// Vendor endpoints
	mux.HandleFunc("GET /vendors/event/{eventId}", vendorHandler.ListVendors)
	mux.HandleFunc("GET /vendors/event/{eventId}/stats", vendorHandler.GetVendorStats)
	mux.HandleFunc("GET /vendors/event/{eventId}/category/{category}", vendorHandler.GetVendorsByCategory)
	mux.HandleFunc("GET /vendors/{vendorId}", vendorHandler.GetVendor)
	mux.HandleFunc("POST /vendors", vendorHandler.AddVendor)
	mux.HandleFunc("POST /vendors/bulk", vendorHandler.AddVendorsBulk)
	mux.HandleFunc("PUT /vendors/{vendorId}", vendorHandler.UpdateVendor)
	mux.HandleFunc("PATCH /vendors/{vendorId}/status", vendorHandler.UpdateVendorStatus)
	mux.HandleFunc("PATCH /vendors/{vendorId}/contract", vendorHandler.UpdateVendorContract)
	mux.HandleFunc("DELETE /vendors/{vendorId}", vendorHandler.DeleteVendor)
	mux.HandleFunc("DELETE /vendors/event/{eventId}/all", vendorHandler.DeleteAllVendors)

	// Unmatched routes get the JSON 404 envelope
	mux.HandleFunc("/", healthHandler.NotFound)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
