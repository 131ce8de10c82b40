package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/macro-service/backend/internal/middleware"
	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/service"
)

// MealHandler serves the saved meal store
type MealHandler struct {
	meals   service.IMealService
	limiter *middleware.RateLimiter
}

func NewMealHandler(meals service.IMealService, limiter *middleware.RateLimiter) *MealHandler {
	return &MealHandler{
		meals:   meals,
		limiter: limiter,
	}
}

func (h *MealHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/save-meal", writeLimit(h.limiter), h.SaveMeal)
	router.DELETE("/delete-meal/:name", writeLimit(h.limiter), h.DeleteMeal)
	router.GET("/meals", h.ListMeals)
	router.GET("/meal/:name", h.GetMeal)
}

func (h *MealHandler) SaveMeal(c *gin.Context) {
	var meal models.Meal
	if err := decodeJSON(c, &meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal data"})
		return
	}

	if err := h.meals.SaveMeal(c.Request.Context(), meal); err != nil {
		if errors.Is(err, service.ErrInvalidMeal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	if err := h.meals.DeleteMeal(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	names, err := h.meals.ListMealNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, names)
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, err := h.meals.GetMeal(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meal)
}
