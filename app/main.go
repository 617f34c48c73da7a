package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/feed-scout/app/api"
	"github.com/lysyi3m/feed-scout/app/cfg"
	"github.com/lysyi3m/feed-scout/app/feed"
	"github.com/lysyi3m/feed-scout/app/fetch"
	"github.com/lysyi3m/feed-scout/app/sitemap"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Feed Scout server", "version", appCfg.Version)

	client := fetch.NewClient(appCfg.UserAgent)
	defer client.Close()

	feedExtractor := feed.NewExtractor(client)
	sitemapExtractor := sitemap.NewExtractor(client)

	handler := api.NewHandler(feedExtractor, sitemapExtractor, appCfg.Version)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:        ":" + appCfg.Port,
		Handler:     server,
		ReadTimeout: 30 * time.Second,
		// A discovery run tries every candidate sequentially, each with
		// its own deadline, so the response can legitimately take minutes.
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		slog.Info("Endpoints available",
			"feed", "POST /extract/feed",
			"sitemap", "POST /extract/sitemap",
			"health", "GET /health")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("HTTP server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Feed Scout server shutdown complete")
}
