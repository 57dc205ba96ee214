package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/stats"
)

// GetDashboardStats returns the overview KPIs: revenue, expenses, profit
// and active-student count. Nothing is cached; the figures are derived from
// the live records on every request.
// GET /v1/dashboard/stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Overview(h.Store.Students(), h.Store.Transactions()))
}
