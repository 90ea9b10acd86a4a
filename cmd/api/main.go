// ABOUTME: Main entry point for the news aggregator API server
// ABOUTME: Wires together all components, starts the background refresher and the HTTP server

package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"news-aggregator-api/api"
	"news-aggregator-api/api/handlers"
	"news-aggregator-api/api/middleware"
	"news-aggregator-api/core/interfaces"
	"news-aggregator-api/core/news"
	"news-aggregator-api/core/workers"
	"news-aggregator-api/infrastructure/cache/memory"
	"news-aggregator-api/infrastructure/cache/redis"
	"news-aggregator-api/infrastructure/cache/sqlite"
	stdhttp "news-aggregator-api/infrastructure/http/standard"
	"news-aggregator-api/infrastructure/logger/structured"
	"news-aggregator-api/pkg/config"
	"news-aggregator-api/pkg/featureflags"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_")
	sources := cfg.Sources.ToDomain()

	logger.Info("Starting news aggregator", map[string]interface{}{
		"port":             cfg.Server.Port,
		"cache_type":       cfg.Cache.Type,
		"refresh_interval": cfg.Server.RefreshInterval.String(),
		"sources":          sources.Len(),
		"flags":            flags.GetAllFlags(),
	})

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Server.FetchTimeout, cfg.News.UserAgent, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})

	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	newsService := news.NewService(deps, news.Options{
		Sources:       sources,
		MaxTotalItems: cfg.News.MaxTotalItems,
		CacheTTL:      cfg.CacheTTL(),
		FetchTimeout:  cfg.Server.FetchTimeout,
		CoverImage:    cfg.News.DefaultCoverImage,
		Concurrency:   cfg.Server.FetchConcurrency,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = featureflags.WithManager(ctx, flags)

	var refresher *workers.Refresher
	if flags.IsEnabled(ctx, featureflags.BackgroundRefresh) {
		refresher = workers.NewRefresher(newsService.Refresh, logger, workers.RefresherConfig{
			Interval: cfg.Server.RefreshInterval,
		})
		if err := refresher.Start(ctx); err != nil {
			logger.Error("Failed to start refresher", map[string]interface{}{"error": err.Error()})
		}
	} else {
		logger.Info("Background refresh disabled", nil)
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	defer limiter.Stop()

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:      logger,
		Flags:       flags,
		RateLimiter: limiter,
	})
	handlers.RegisterHealthRoutes(humaAPI)
	handlers.NewNewsHandler(newsService, logger).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...", nil)

	if refresher != nil {
		_ = refresher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newStore builds the configured cache backend, falling back to memory when it is unavailable
func newStore(cfg *config.Config, logger interfaces.Logger) (interfaces.Store, func()) {
	noop := func() {}

	switch cfg.Cache.Type {
	case "redis":
		store, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return store, closer(store, logger)
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		if dir := filepath.Dir(cfg.Cache.SQLite.Path); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		store, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return store, closer(store, logger)
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(), noop
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
		}
	}
}
