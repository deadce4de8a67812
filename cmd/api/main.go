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

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/portfolio-backend/internal/admin"
	"github.com/carterperez-dev/portfolio-backend/internal/certification"
	"github.com/carterperez-dev/portfolio-backend/internal/config"
	"github.com/carterperez-dev/portfolio-backend/internal/contact"
	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/education"
	"github.com/carterperez-dev/portfolio-backend/internal/experience"
	"github.com/carterperez-dev/portfolio-backend/internal/health"
	"github.com/carterperez-dev/portfolio-backend/internal/middleware"
	"github.com/carterperez-dev/portfolio-backend/internal/notify"
	"github.com/carterperez-dev/portfolio-backend/internal/project"
	"github.com/carterperez-dev/portfolio-backend/internal/server"
	"github.com/carterperez-dev/portfolio-backend/internal/skill"
	"github.com/carterperez-dev/portfolio-backend/internal/tool"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
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

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App, cfg.Database.Driver)
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
		"driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.AutoMigrate,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, using in-process rate limiting",
			"error", err,
		)
	} else if redis != nil {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	publisher, err := notify.New(cfg.AMQP)
	if err != nil {
		logger.Warn("amqp unavailable, contact notifications disabled",
			"error", err,
		)
		publisher = notify.Noop{}
	}

	validate := core.NewValidator()

	projectHandler := project.NewHandler(
		project.NewService(project.NewRepository(db.DB)),
		validate,
	)
	skillHandler := skill.NewHandler(
		skill.NewService(skill.NewRepository(db.DB)),
		validate,
	)
	toolHandler := tool.NewHandler(
		tool.NewService(tool.NewRepository(db.DB)),
		validate,
	)
	certificationHandler := certification.NewHandler(
		certification.NewService(certification.NewRepository(db.DB)),
		validate,
	)
	experienceHandler := experience.NewHandler(
		experience.NewService(experience.NewRepository(db.DB)),
		validate,
	)
	educationHandler := education.NewHandler(
		education.NewService(education.NewRepository(db.DB)),
		validate,
	)
	contactHandler := contact.NewHandler(
		contact.NewService(contact.NewRepository(db.DB), publisher),
		validate,
		cfg.Contact.SubmitDelay,
	)

	checks := []health.Check{{Name: "database", Checker: db}}
	var redisClient *goredis.Client
	if redis != nil {
		redisClient = redis.Client
		checks = append(checks, health.Check{Name: "redis", Checker: redis})
	}
	healthHandler := health.NewHandler(checks...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Window,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	contactLimiter := middleware.NewRateLimiter(
		redisClient,
		middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.ContactRequests,
				cfg.RateLimit.ContactWindow,
				cfg.RateLimit.ContactRequests,
			),
			KeyFunc:  middleware.KeyByIPAndEndpoint,
			FailOpen: true,
			BypassFunc: func(r *http.Request) bool {
				return r.Method != http.MethodPost
			},
		},
	)

	router.Route("/api", func(r chi.Router) {
		projectHandler.RegisterRoutes(r)
		skillHandler.RegisterRoutes(r)
		toolHandler.RegisterRoutes(r)
		certificationHandler.RegisterRoutes(r)
		experienceHandler.RegisterRoutes(r)
		educationHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			if cfg.RateLimit.ContactRequests > 0 {
				r.Use(contactLimiter.Handler)
			}
			contactHandler.RegisterRoutes(r)
		})

		if cfg.Admin.Enabled {
			adminHandler := admin.NewHandler(adminConfig(db, redis))
			adminHandler.RegisterRoutes(r)
			logger.Warn("admin stats endpoints enabled")
		}
	})

	if cfg.Static.Dir != "" {
		if err := srv.ServeStatic(cfg.Static.Dir); err != nil {
			logger.Warn("static files disabled", "error", err)
		}
	}

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

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Error("amqp close error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func adminConfig(db *core.Database, redis *core.Redis) admin.HandlerConfig {
	cfg := admin.HandlerConfig{
		DBStats: db.Stats,
		DBPing:  db.Ping,
		ContentCounts: func(ctx context.Context) (map[string]int, error) {
			return db.CountRows(ctx, core.ContentTables...)
		},
	}
	if redis != nil {
		cfg.RedisStats = redis.PoolStats
		cfg.RedisPing = redis.Ping
	}
	return cfg
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
