package handlers

import (
	"net/http"

	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler handles HTTP requests for flight statistics
type StatisticsHandler struct {
	service service.StatisticsServiceInterface
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(service service.StatisticsServiceInterface) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetFlightStatistics handles GET /api/v1/flights/statistics
// @Summary Get flight statistics
// @Description Get aggregate flight statistics: total flights, most common destination and most common aircraft type. The aggregates are null when no flights exist; ties are broken by the lexicographically smallest value.
// @Tags flights
// @Accept json
// @Produce json
// @Success 200 {object} service.FlightStatisticsResponse "Successfully computed statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/statistics [get]
func (h *StatisticsHandler) GetFlightStatistics(c *gin.Context) {
	stats, err := h.service.GetFlightStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute flight statistics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
