package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eksemail/internal/config"
	"eksemail/internal/domain/notification"
	"eksemail/internal/infra/email"
	"eksemail/internal/infra/ratelimit"
	"eksemail/internal/infra/store"
	"eksemail/internal/infra/template"
	"eksemail/internal/router"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	// ==========================================
	// Dependency Injection (Manual Wiring)
	// ==========================================

	// Template Engine
	tmplEngine, err := template.NewEngine()
	if err != nil {
		slog.Error("failed to initialize template engine", "error", err)
		os.Exit(1)
	}
	slog.Info("template engine initialized", "templates", len(notification.TemplateIDs()))

	// Outbound mail provider
	var provider notification.Provider
	switch cfg.Email.Provider {
	case "resend":
		provider = email.NewResendProvider(
			cfg.Email.APIKey,
			cfg.Email.FromAddress,
			cfg.Email.FromName,
		)
	default:
		provider = email.NewSMTPProvider(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
	}
	slog.Info("mail provider initialized", "provider", provider.Name())

	// Delivery log store (optional)
	var logStore notification.LogStore
	if cfg.Supabase.URL != "" {
		supaStore, err := store.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		if err != nil {
			slog.Error("failed to initialize supabase store", "error", err)
			os.Exit(1)
		}
		logStore = supaStore
		slog.Info("supabase delivery log store initialized")
	} else {
		slog.Warn("supabase url not configured, delivery logging disabled")
	}

	// Contact-form recipient throttle (optional)
	var recipientLimiter notification.RecipientRateLimiter
	if cfg.Redis.Address != "" {
		limiter := ratelimit.NewRedisRecipientLimiter(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.ContactRateLimit.MaxPerHour,
		)
		defer limiter.Close()
		recipientLimiter = limiter
		slog.Info("recipient rate limiter initialized", "max_per_hour", cfg.ContactRateLimit.MaxPerHour)
	}

	// Service
	notificationService := notification.NewService(tmplEngine, provider, logStore, recipientLimiter)

	// Handler
	notificationHandler := notification.NewHandler(notificationService)

	// Router
	r := router.New(cfg, notificationHandler)

	// ==========================================
	// HTTP Server with Graceful Shutdown
	// ==========================================

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
