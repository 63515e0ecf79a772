package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"receipt/config"
	"receipt/di"
	middleware_custom "receipt/middleware"
	"receipt/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.Weekly.GenerationTimeout,
	}))
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	health := NewHealthHandler(container.ReceiptDBRepository, cfg.Database.QueryTimeout)
	v1.GET("/health", health.Health)

	handler := NewReceiptHandler(container.FetchReportUsecase, container.GenerateReportUsecase, container.ShareReportUsecase)
	registerReceiptRoutes(v1, handler, middleware_custom.NewBackendTokenMiddleware(logger.Logger, cfg.Auth))
}

func registerReceiptRoutes(v1 *echo.Group, handler *ReceiptHandler, auth *middleware_custom.BackendTokenMiddleware) {
	// The shared view is public.
	v1.GET("/receipts/shared/:token", handler.GetSharedReceipt)

	receipts := v1.Group("/receipts", auth.RequireUser())
	receipts.GET("", handler.ListReceipts)
	receipts.GET("/current", handler.GetCurrentReceipt)
	receipts.GET("/:year/:week", handler.GetReceipt)
	receipts.POST("/generate/:year/:week", handler.GenerateReceipt)
	receipts.POST("/:id/share", handler.ShareReceipt)
	receipts.DELETE("/:id/share", handler.UnshareReceipt)
}
