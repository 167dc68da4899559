package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/events"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const maxBodySize = "1M"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Server.Environment, cfg.Server.LogLevel)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	publisher, err := events.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		logger.Warn("AMQP unavailable, domain events disabled", "error", err)
		publisher = events.NoopPublisher{}
	}
	publisher = events.NewBreakerPublisher(publisher, events.DefaultBreakerConfig())
	defer publisher.Close()

	recurringRepo := repositories.NewRecurringExpenseRepository(db.DB)
	upcomingRepo := repositories.NewUpcomingPaymentRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	summaryRepo := repositories.NewDailySummaryRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	recurringLogger := services.NewRecurringLogger(logger)
	tokenService := services.NewTokenService(&cfg.JWT)

	summaryService := services.NewDailySummaryService(summaryRepo, expenseRepo, publisher, recurringLogger, metrics, logger)
	projector := services.NewUpcomingPaymentProjector(upcomingRepo, recurringLogger, metrics, logger)
	recurringService := services.NewRecurringService(recurringRepo, expenseRepo, projector, summaryService, publisher, recurringLogger, metrics, logger)
	upcomingService := services.NewUpcomingPaymentService(upcomingRepo, recurringService, projector, recurringLogger, metrics, logger)
	expenseService := services.NewExpenseService(expenseRepo, summaryService, metrics, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("trace_id", middleware.GetTraceID(c)),
			)
			return nil
		},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.Server.CORSAllowOrigins}))
	e.Use(echomw.BodyLimit(maxBodySize))
	e.Use(rateLimiter.Middleware())

	deps := routeDeps{
		health:       handlers.NewHealthCheckHandler(db),
		recurring:    handlers.NewRecurringHandler(recurringService),
		upcoming:     handlers.NewUpcomingPaymentHandler(upcomingService),
		expenses:     handlers.NewExpenseHandler(expenseService),
		summaries:    handlers.NewDailySummaryHandler(summaryService),
		tokenService: tokenService,
		gatherer:     prometheus.DefaultGatherer,
	}
	if !cfg.IsProduction() {
		deps.dev = handlers.NewDevHandler(tokenService, expenseService, recurringService)
	}
	registerRoutes(e, deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting finance tracker", "addr", addr, "environment", cfg.Server.Environment, "db_driver", cfg.Database.Driver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.Cleanup(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
