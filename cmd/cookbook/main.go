package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/config"
	dbValkey "github.com/kailas-cloud/cookbook/internal/db/valkey"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
	logpkg "github.com/kailas-cloud/cookbook/internal/logger"
	"github.com/kailas-cloud/cookbook/internal/metrics"
	reciperepo "github.com/kailas-cloud/cookbook/internal/repository/recipe"
	chiTransport "github.com/kailas-cloud/cookbook/internal/transport/chi"
	"github.com/kailas-cloud/cookbook/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cookbook/internal/usecase/health"
	"github.com/kailas-cloud/cookbook/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cookbook API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("source", cfg.Source.Kind),
		zap.Bool("cache", cfg.Cache.Enabled),
	)

	metrics.RegisterCatalogMetrics()

	ctx := context.Background()

	src, err := buildSource(cfg.Source)
	if err != nil {
		logger.Fatal("Invalid recipe source", zap.Error(err))
	}

	// Pass nil interfaces (not typed nil pointers) when the cache is disabled.
	var (
		cachePinger healthuc.CachePinger
		catalogOpts []catalog.Option
	)
	if cfg.Cache.Enabled {
		store, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:      cfg.Cache.Addrs,
			Password:   cfg.Cache.Password,
			Standalone: len(cfg.Cache.Addrs) == 1,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache", zap.Strings("addrs", cfg.Cache.Addrs))

		cached := reciperepo.NewCachedSource(
			src, store, cfg.Cache.KeyPrefix,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.SourceCacheTotal, logger,
		)
		src = cached
		cachePinger = store
		catalogOpts = append(catalogOpts, catalog.WithCacheInvalidator(cached))
	}

	bounds := criteria.Bounds{
		Calories: criteria.NewRange(0, cfg.Filter.CalorieMax),
		Protein:  criteria.NewRange(0, cfg.Filter.ProteinMax),
	}
	catalogSvc := catalog.New(reciperepo.NewLoader(src, logger), bounds, logger, catalogOpts...)

	// A failed initial load leaves the API up and reporting not-loaded until a reload succeeds.
	if err := catalogSvc.Load(ctx); err != nil {
		logger.Error("Initial recipe load failed; serving without a catalog", zap.Error(err))
	}

	healthSvc := healthuc.New(catalogSvc, cachePinger)

	server := chiTransport.NewServer(catalogSvc, healthSvc, chiTransport.Assets{
		Dir:         cfg.Assets.Dir,
		Placeholder: cfg.Assets.Placeholder,
	}, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		AdminAPIKeys:      cfg.Admin.APIKeys,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildSource picks the document source named by the config.
func buildSource(cfg config.SourceConfig) (reciperepo.Source, error) {
	switch cfg.Kind {
	case config.SourceEmbedded:
		return reciperepo.NewEmbeddedSource(), nil
	case config.SourceFile:
		return reciperepo.NewFileSource(cfg.Path), nil
	case config.SourceURL:
		return reciperepo.NewHTTPSource(cfg.URL, time.Duration(cfg.TimeoutSec)*time.Second), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
