package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gh-burndown/internal/app"
	"gh-burndown/internal/config"
)

func main() {
	// Flags
	serve := flag.Bool("serve", false, "Run the HTTP server instead of a one-shot report")
	date := flag.String("date", "", "Report date YYYY-MM-DD (default: today, UTC)")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	// Logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	asOf := time.Now().UTC()
	if *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			logger.Error("invalid -date, expected YYYY-MM-DD", slog.String("value", *date))
			os.Exit(1)
		}
		asOf = parsed
	}

	// App
	application, err := app.New(logger, cfg)
	if err != nil {
		logger.Error("failed to initialize app", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !*serve {
		path, err := application.RunOnce(ctx, asOf)
		if err != nil {
			logger.Error("report failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("report completed", slog.String("chart", path))
		return
	}

	srv := application.Server(cfg.HTTP.Addr)
	go func() {
		logger.Info("listening", slog.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
