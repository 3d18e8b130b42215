// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/config"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/events"
	"github.com/fisherfans/backend/internal/graph"
	"github.com/fisherfans/backend/internal/health"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/middleware"
	"github.com/fisherfans/backend/internal/migrations"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/server"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
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

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(ctx, db.DB.DB); err != nil {
			return err
		}
	}

	metrics := core.NewMetrics()
	metrics.RegisterDB(db.DB.DB, "postgres")

	deps := []health.Dependency{{Name: "database", Checker: db}}

	var rdb *redis.Client
	var cache *core.Redis
	if cfg.Redis.Enabled() {
		cache, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		rdb = cache.Client
		metrics.RegisterRedis(cache)
		deps = append(deps, health.Dependency{Name: "redis", Checker: cache})
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, rate limiting in process")
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQP.Enabled {
		amqpPublisher, amqpErr := events.NewAMQPPublisher(cfg.AMQP)
		if amqpErr != nil {
			return amqpErr
		}
		publisher = amqpPublisher
		deps = append(deps, health.Dependency{Name: "broker", Checker: amqpPublisher})
		logger.Info("event publisher connected", "exchange", cfg.AMQP.Exchange)
	}

	hasher, err := core.NewPasswordHasher(core.PasswordParamsFromConfig(cfg.Security))
	if err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"token_expire", cfg.JWT.TokenExpire,
	)

	userSvc := user.NewService(user.NewRepository(db.DB), hasher)
	boatSvc := boat.NewService(boat.NewRepository(db.DB), userSvc)
	tripSvc := trip.NewService(trip.NewRepository(db.DB), userSvc, boatSvc)
	occurrenceSvc := occurrence.NewService(occurrence.NewRepository(db.DB), tripSvc)
	bookingSvc := booking.NewService(
		booking.NewRepository(db.DB),
		userSvc,
		tripSvc,
		occurrenceSvc,
		publisher,
		metrics,
	)
	logEntrySvc := logentry.NewService(logentry.NewRepository(db.DB), userSvc)
	authSvc := auth.NewService(jwtManager, hasher, userSvc)

	schema, err := graph.NewSchema(graph.NewResolver(graph.Services{
		Users:       userSvc,
		Boats:       boatSvc,
		Trips:       tripSvc,
		Occurrences: occurrenceSvc,
		Bookings:    bookingSvc,
		LogEntries:  logEntrySvc,
		Sessions:    authSvc,
	}), cfg.GraphQL.MaxDepth)
	if err != nil {
		return err
	}

	healthHandler := health.NewHandler(deps...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.OptionalAuth(authSvc))
	router.Use(
		middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Window,
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			KeyFunc:  middleware.KeyByUser,
			FailOpen: true,
			BypassFunc: func(r *http.Request) bool {
				return r.URL.Path != cfg.GraphQL.Path
			},
		}).Handler,
	)

	healthHandler.RegisterRoutes(router)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Method(http.MethodPost, cfg.GraphQL.Path, graph.NewHandler(schema, metrics))
	if cfg.GraphQL.Playground && !cfg.IsProduction() {
		router.Method(http.MethodGet, cfg.GraphQL.Path, graph.Playground(cfg.GraphQL.Path))
	}

	srv.Handler(func(h http.Handler) http.Handler {
		return otelhttp.NewHandler(h, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
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

	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if cache != nil {
		if err := cache.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
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
