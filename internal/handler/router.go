package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sameday-trips/internal/handler/api"
	"sameday-trips/internal/handler/middleware"
	"sameday-trips/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, tripHandler *api.TripHandler, pricingHandler *api.PricingHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, tripHandler, pricingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, tripHandler *api.TripHandler, pricingHandler *api.PricingHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/trips"), []route{
			{Method: http.MethodPost, Path: "/search", Handler: tripHandler.Search},
		})
		addRoutes(apiGroup.Group("/pricing"), []route{
			{Method: http.MethodGet, Path: "", Handler: pricingHandler.List},
			{Method: http.MethodGet, Path: "/:destination", Handler: pricingHandler.Latest},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
