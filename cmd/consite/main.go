// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/avertum/consite/internal/config"
	"github.com/avertum/consite/internal/handler/api"
	"github.com/avertum/consite/internal/logging"
	"github.com/avertum/consite/internal/middleware"
	"github.com/avertum/consite/internal/store"
	"github.com/avertum/consite/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}
	if *showVersion {
		fmt.Printf("consite %s\n", versionInfo)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	st := store.New(cfg.EventLogSize)

	// Tee WARN+ records into the store's event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logging.NewEventLogHandler(textHandler, st))
	slog.SetDefault(logger)
	slog.Info("store initialized", "event_log_size", cfg.EventLogSize)

	if cfg.DoSeed {
		if err := store.Seed(st); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}

	apiHandler := api.NewHandler(st)
	healthHandler := api.NewHealthHandler()

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))                    // Gzip compression with level 5
	r.Use(chimw.GetHead)                        // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second)) // 30 second request timeout
	r.Use(middleware.StripTrailingSlash)        // Redirect /path/ to /path (301)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))

	r.Route("/api", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.Health)
		r.Get("/health/live", healthHandler.Liveness)
		r.Get("/health/ready", healthHandler.Readiness)

		// Public routes
		r.Post("/contact", apiHandler.SubmitContact)
		r.Get("/resources", apiHandler.ListResources)
		r.Get("/resources/{slug}", apiHandler.GetResourceBySlug)
		r.Get("/industry-pages", apiHandler.ListIndustryPages)
		r.Get("/industry-pages/{slug}", apiHandler.GetIndustryPageBySlug)
		r.Get("/testimonials", apiHandler.ListTestimonials)

		// Content management routes. Known gap: no authentication middleware
		// is attached here; the group exists so one can be added.
		r.Route("/admin", func(r chi.Router) {
			r.Get("/contact-submissions", apiHandler.ListContactSubmissions)
			r.Patch("/contact-submissions/{id}", apiHandler.UpdateContactStatus)

			r.Post("/resources", apiHandler.CreateResource)
			r.Patch("/resources/{id}", apiHandler.UpdateResource)
			r.Delete("/resources/{id}", apiHandler.DeleteResource)

			r.Post("/industry-pages", apiHandler.CreateIndustryPage)
			r.Patch("/industry-pages/{id}", apiHandler.UpdateIndustryPage)
			r.Delete("/industry-pages/{id}", apiHandler.DeleteIndustryPage)

			r.Post("/testimonials", apiHandler.CreateTestimonial)
			r.Patch("/testimonials/{id}", apiHandler.UpdateTestimonial)
			r.Delete("/testimonials/{id}", apiHandler.DeleteTestimonial)

			r.Get("/events", apiHandler.ListEvents)
		})
	})

	// JSON 404 for unknown paths
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		api.WriteNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		api.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout. All state is volatile and is
	// discarded with the process.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
