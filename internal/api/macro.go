package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/macro-service/backend/internal/service"
	"github.com/pageza/macro-service/backend/internal/types"
)

// MacroHandler serves the per-meal macro calculation
type MacroHandler struct {
	macros service.IMacroService
}

func NewMacroHandler(macros service.IMacroService) *MacroHandler {
	return &MacroHandler{macros: macros}
}

func (h *MacroHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/get-food-options", h.GetFoodOptions)
}

// GetFoodOptions answers every failure with 400 and the error text
func (h *MacroHandler) GetFoodOptions(c *gin.Context) {
	var body map[string]any
	if err := decodeJSON(c, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := types.ParseFoodOptionsRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options, err := h.macros.FoodOptions(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}
