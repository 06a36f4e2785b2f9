package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketplace/backend/internal/infrastructure/config"
	"github.com/marketplace/backend/internal/infrastructure/logger"
	"github.com/marketplace/backend/internal/interfaces/http/dto"
	"github.com/marketplace/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with the middleware chain, health and metrics endpoints and API routes
func NewEngine(cfg *config.Config, log *zap.Logger, h Handlers) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	middleware.SetupValidator()

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
	)

	if cfg.Metrics.Enabled {
		metrics := middleware.NewHTTPMetrics()
		engine.Use(metrics.Middleware())
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	engine.GET("/health", h.System.Health)

	NewRouter(engine, WithAPIVersion(cfg.HTTP.APIVersion), WithLogger(log)).
		Register(MarketplaceGroups(h)...).
		Setup()

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound,
			"Route not found",
			middleware.GetRequestID(c),
		))
	})

	return engine, nil
}
