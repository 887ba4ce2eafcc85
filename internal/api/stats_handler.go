package api

import (
	"net/http"

	"alcyxob/x3-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Get aggregated progress statistics
// @Description Streaks, weekly totals, per-exercise personal bests, and band usage.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.UserStats
// @Failure 409 {object} gin.H "Start date not set"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		abortWorkoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
