// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/shreeram-borwells/srb-backend/internal/admin"
	"github.com/shreeram-borwells/srb-backend/internal/auth"
	"github.com/shreeram-borwells/srb-backend/internal/config"
	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/fixtures"
	"github.com/shreeram-borwells/srb-backend/internal/generator"
	"github.com/shreeram-borwells/srb-backend/internal/health"
	"github.com/shreeram-borwells/srb-backend/internal/ledger"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
	"github.com/shreeram-borwells/srb-backend/internal/middleware"
	"github.com/shreeram-borwells/srb-backend/internal/report"
	"github.com/shreeram-borwells/srb-backend/internal/roster"
	"github.com/shreeram-borwells/srb-backend/internal/server"
	"github.com/shreeram-borwells/srb-backend/internal/site"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	//nolint:errcheck // .env is optional
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	redis, err := core.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis client created",
		"pool_size", cfg.Redis.PoolSize,
	)

	if _, statErr := os.Stat(cfg.JWT.PrivateKeyPath); os.IsNotExist(statErr) {
		logger.Warn("signing keys not found, generating a fresh pair",
			"path", cfg.JWT.PrivateKeyPath,
		)
		if mkErr := os.MkdirAll(
			filepath.Dir(cfg.JWT.PrivateKeyPath),
			0o700,
		); mkErr != nil {
			return mkErr
		}
		if genErr := auth.GenerateKeyPair(
			cfg.JWT.PrivateKeyPath,
			cfg.JWT.PublicKeyPath,
		); genErr != nil {
			return genErr
		}
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized", "algorithm", "ES256")

	rosterStore := roster.NewStore()
	ledgerStore := ledger.NewStore()

	seed, err := fixtures.Load(cfg.Fixtures.Path)
	if err != nil {
		return err
	}
	seed.SeedRoster(rosterStore)
	seed.SeedLedger(ledgerStore)

	bores, expenses := ledgerStore.Counts()
	if rosterStore.Count() == 0 {
		logger.Warn("no fixture file found, starting with empty stores",
			"path", cfg.Fixtures.Path,
		)
	}
	logger.Info("stores seeded",
		"users", rosterStore.Count(),
		"bores", bores,
		"expenses", expenses,
	)

	authSvc := auth.NewService(rosterStore, jwtManager, logger)
	authHandler := auth.NewHandler(authSvc, rosterStore)

	rosterHandler := roster.NewHandler(rosterStore)
	ledgerHandler := ledger.NewHandler(ledgerStore)
	reportHandler := report.NewHandler(ledgerStore)

	generatorClient := generator.NewClient(cfg.Generator)
	generatorHandler := generator.NewHandler(generatorClient)
	if !generatorClient.Configured() {
		logger.Warn("generator API key missing, drafting is disabled")
	}

	siteHandler := site.NewHandler(cfg.Company)
	healthHandler := health.NewHandler(redis, ledgerStore)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
		Ledger:     ledgerStore,
		Roster:     rosterStore,
		AuthSvc:    authSvc,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle("/metrics", metrics.Handler())

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(authSvc)
	staffOnly := middleware.RequireStaff
	superAdminOnly := middleware.RequireSuperAdmin

	// Drafting hits a paid upstream; it gets its own tighter per-user limit
	// on top of the global one.
	generatorLimiter := middleware.NewRateLimiter(
		redis.Client,
		middleware.RateLimitConfig{
			Limit:    middleware.PerMinute(10, 3),
			KeyFunc:  middleware.KeyByUserAndEndpoint,
			FailOpen: true,
		},
	).Handler

	router.Route("/v1", func(r chi.Router) {
		siteHandler.RegisterRoutes(r)
		authHandler.RegisterRoutes(r, authenticator)
		ledgerHandler.RegisterRoutes(r, authenticator, staffOnly, superAdminOnly)
		rosterHandler.RegisterRoutes(r, authenticator, superAdminOnly)
		reportHandler.RegisterRoutes(r, authenticator, superAdminOnly)
		generatorHandler.RegisterRoutes(r, authenticator, staffOnly, generatorLimiter)
		adminHandler.RegisterRoutes(r, authenticator, superAdminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
