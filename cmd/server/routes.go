package main

import (
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeDeps struct {
	health       *handlers.HealthCheckHandler
	recurring    *handlers.RecurringHandler
	upcoming     *handlers.UpcomingPaymentHandler
	expenses     *handlers.ExpenseHandler
	summaries    *handlers.DailySummaryHandler
	dev          *handlers.DevHandler
	tokenService services.TokenServiceInterface
	gatherer     prometheus.Gatherer
}

func registerRoutes(e *echo.Echo, deps routeDeps) {
	e.GET("/health", deps.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/api/v1")
	auth := middleware.RequireAuth(deps.tokenService)

	recurring := v1.Group("/recurring-expenses", auth)
	recurring.POST("", deps.recurring.Create)
	recurring.GET("", deps.recurring.List)
	recurring.GET("/:id", deps.recurring.Get)
	recurring.PATCH("/:id", deps.recurring.Update)
	recurring.DELETE("/:id", deps.recurring.Deactivate)
	recurring.POST("/:id/payments", deps.recurring.RecordPayment)

	upcoming := v1.Group("/upcoming-payments", auth)
	upcoming.GET("", deps.upcoming.List)
	upcoming.POST("/generate", deps.upcoming.Generate)
	upcoming.POST("/refresh", deps.upcoming.RefreshStatuses)
	upcoming.POST("/:id/pay", deps.upcoming.MarkPaid)

	expenses := v1.Group("/expenses", auth)
	expenses.POST("", deps.expenses.Create)
	expenses.GET("", deps.expenses.List)
	expenses.GET("/:id", deps.expenses.Get)
	expenses.PUT("/:id", deps.expenses.Update)
	expenses.DELETE("/:id", deps.expenses.Delete)

	summaries := v1.Group("/daily-summaries", auth)
	summaries.GET("", deps.summaries.ListRange)
	summaries.POST("/rebuild", deps.summaries.Rebuild)
	summaries.GET("/:date", deps.summaries.GetDay)

	if deps.dev != nil {
		dev := v1.Group("/dev")
		dev.POST("/token", deps.dev.IssueToken)
		dev.POST("/seed", deps.dev.Seed, auth)
	}
}
