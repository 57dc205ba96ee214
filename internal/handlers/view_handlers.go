package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/views"
)

type ViewInput struct {
	View views.View `json:"view" binding:"required"`
}

// GetView returns the active top-level screen.
// GET /v1/view
func (h *Handlers) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.Views.Current()})
}

// SetView navigates to a named screen. Pure state transition: no side
// effects happen here, whatever the target view does is its own business.
// PUT /v1/view
func (h *Handlers) SetView(c *gin.Context) {
	var input ViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Views.Navigate(input.View); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.Views.Current()})
}
