// API server entry point for ClauseLens.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/domain/rewrite"
	"github.com/clauselens/clauselens/internal/infrastructure/database/postgres"
	"github.com/clauselens/clauselens/internal/infrastructure/database/postgres/repositories"
	"github.com/clauselens/clauselens/internal/infrastructure/database/redis"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/clauselens/clauselens/internal/interfaces/http"
	"github.com/clauselens/clauselens/internal/interfaces/http/handlers"
	"github.com/clauselens/clauselens/internal/interfaces/http/middleware"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, fromFile, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig(cfg.Log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting clauselens api server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
	)

	if fromFile {
		config.Watch(*configPath, func(next *config.Config) {
			if next.Log.Level == cfg.Log.Level && next.Log.Format == cfg.Log.Format {
				return
			}
			reloaded, err := logging.NewLogger(logging.LogConfig(next.Log))
			if err != nil {
				logger.Warn("config reload: invalid log settings", logging.Err(err))
				return
			}
			logging.SetDefault(reloaded)
			logger.Info("log settings reloaded", logging.String("level", next.Log.Level))
		})
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", logging.Err(err))
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx := context.Background()

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "clauselens",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return fmt.Errorf("metrics initialization failed: %w", err)
	}
	metrics := prometheus.NewAppMetrics(collector)

	var (
		repo     analysis.Repository
		cache    analysis.Cache
		checkers []handlers.HealthChecker
	)

	if cfg.Database.Enabled {
		if err := postgres.RunMigrations(cfg.Database, logger); err != nil {
			return err
		}
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo = repositories.NewAnalysisRepository(pool, logger)
		checkers = append(checkers, gaugedChecker(metrics, "postgres", pool.Ping))
	}

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		opts := []redis.Option{redis.WithDefaultTTL(cfg.Redis.DefaultTTL)}
		if cfg.Redis.KeyPrefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.KeyPrefix))
		}
		cache = redis.NewCache(client, logger, opts...)
		checkers = append(checkers, gaugedChecker(metrics, "redis", client.Ping))
	}

	svc := analysis.NewService(repo, cache, rewrite.New(nil), logger, cfg.Analysis)

	rlCfg := middleware.DefaultRateLimitConfig()
	limiter := middleware.NewTokenBucketLimiter(rlCfg.RequestsPerSecond, rlCfg.BurstSize, rlCfg.CleanupInterval)
	defer limiter.Stop()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AnalysisHandler:  handlers.NewAnalysisHandler(svc, metrics, logger),
		ClauseHandler:    handlers.NewClauseHandler(svc, logger),
		HealthHandler:    handlers.NewHealthHandler(version, checkers...),
		CORS:             middleware.CORS(middleware.DefaultCORSConfig()),
		Logging:          middleware.RequestLogging(logger, middleware.DefaultLoggingConfig()),
		RateLimit:        middleware.RateLimit(limiter, rlCfg),
		Metrics:          middleware.Metrics(metrics),
		MetricsCollector: collector,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	}

	if err := srv.Stop(ctx); err != nil {
		return err
	}
	return <-errCh
}

// gaugedChecker wraps a component health probe so each readiness check also
// updates the health gauge for that component.
func gaugedChecker(m *prometheus.AppMetrics, name string, probe func(context.Context) error) handlers.HealthChecker {
	return handlers.CheckerFunc{
		ComponentName: name,
		Fn: func(ctx context.Context) error {
			err := probe(ctx)
			status := 1.0
			if err != nil {
				status = 0
			}
			if m != nil && m.HealthCheckStatus != nil {
				m.HealthCheckStatus.WithLabelValues(name).Set(status)
			}
			return err
		},
	}
}

// loadConfig reads the config file when present and falls back to environment
// variables otherwise. The second return reports whether a file was used.
func loadConfig(path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := config.Load(path)
		return cfg, err == nil, err
	}
	cfg, err := config.LoadFromEnv()
	return cfg, false, err
}
