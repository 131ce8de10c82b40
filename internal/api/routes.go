package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pageza/macro-service/backend/internal/middleware"
	"github.com/pageza/macro-service/backend/internal/service"
)

// Deps holds the services the HTTP surface is built on
type Deps struct {
	Foods  service.IFoodService
	Meals  service.IMealService
	Macros service.IMacroService

	// Limiter guards mutating routes; nil disables rate limiting
	Limiter *middleware.RateLimiter

	StaticDir string
}

// HealthCheck returns the health status of the API. When rate limiting is
// on, it also reports the caller's remaining writes in the current window.
func HealthCheck(limiter *middleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status":  "healthy",
			"message": "Macro service is running",
		}

		if limiter != nil {
			remaining, reset, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
			if err != nil {
				log.Warn().Err(err).Msg("Rate limit lookup failed")
			} else {
				resp["rate_limit"] = gin.H{
					"remaining": remaining,
					"reset":     reset.Unix(),
				}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Deps) {
	router.GET("/health", HealthCheck(deps.Limiter))

	if deps.StaticDir != "" {
		router.StaticFile("/", filepath.Join(deps.StaticDir, "index.html"))
		router.Static("/static", deps.StaticDir)
	}

	NewFoodHandler(deps.Foods, deps.Limiter).RegisterRoutes(router)
	NewMealHandler(deps.Meals, deps.Limiter).RegisterRoutes(router)
	NewMacroHandler(deps.Macros).RegisterRoutes(router)
}
