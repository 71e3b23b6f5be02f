package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"softwarehouse.dev/internal/config"
	"softwarehouse.dev/internal/handlers"
	"softwarehouse.dev/internal/mail"
	"softwarehouse.dev/internal/seed"
	"softwarehouse.dev/internal/services"
	"softwarehouse.dev/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Seed the in-memory collections. State lives for the process lifetime;
	// a restart resets to seed data.
	projectSeed, err := seed.Projects(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	blogSeed, err := seed.BlogPosts(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("seed blog posts: %w", err)
	}
	projectStore := store.New(projectSeed)
	blogStore := store.New(blogSeed)

	mailer, err := mail.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	if cfg.SMTP.User == "" {
		logger.Warn("EMAIL_USER is not set; contact form sends will fail")
	}

	projectService := services.NewProjectService(projectStore)
	blogService := services.NewBlogService(blogStore)
	contactService := services.NewContactService(mailer, cfg, logger)

	router := handlers.SetupRoutes(cfg, logger, projectService, blogService, contactService)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Generous write timeout: the contact relay waits on two
		// sequential SMTP sends within one request.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", cfg.ServerAddr,
			"projects", projectStore.Len(),
			"blog_posts", blogStore.Len(),
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
