package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/macro-service/backend/internal/middleware"
	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/service"
)

// FoodHandler serves the food catalog
type FoodHandler struct {
	foods   service.IFoodService
	limiter *middleware.RateLimiter
}

func NewFoodHandler(foods service.IFoodService, limiter *middleware.RateLimiter) *FoodHandler {
	return &FoodHandler{
		foods:   foods,
		limiter: limiter,
	}
}

func (h *FoodHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/food-list", h.ListFoods)
	router.POST("/add-food", writeLimit(h.limiter), h.AddFood)
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.foods.ListFoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (h *FoodHandler) AddFood(c *gin.Context) {
	var record models.FoodRecord
	if err := decodeJSON(c, &record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.foods.AddFood(c.Request.Context(), record)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"added":   added,
	})
}

// decodeJSON reads the request body keeping numbers as json.Number so
// submitted values are stored unchanged
func decodeJSON(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	return dec.Decode(v)
}

// writeLimit returns the limiter middleware, or a pass-through when rate
// limiting is disabled
func writeLimit(rl *middleware.RateLimiter) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.RateLimitMiddleware()
}
