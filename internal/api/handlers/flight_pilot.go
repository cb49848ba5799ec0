package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlightPilotHandler handles HTTP requests for pilot-flight assignments
type FlightPilotHandler struct {
	service service.FlightPilotServiceInterface
}

// NewFlightPilotHandler creates a new flight-pilot assignment handler
func NewFlightPilotHandler(service service.FlightPilotServiceInterface) *FlightPilotHandler {
	return &FlightPilotHandler{service: service}
}

// AssignPilot handles POST /api/v1/flights/:id/pilots
// @Summary Assign a pilot to a flight
// @Description Assign an existing pilot to an existing flight. A pilot can be assigned to a flight at most once.
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param assignment body service.AssignPilotRequest true "Pilot assignment data"
// @Success 201 {object} service.FlightPilotResponse "Successfully assigned pilot"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failed"
// @Failure 404 {object} map[string]interface{} "Flight or pilot not found"
// @Failure 409 {object} map[string]interface{} "Pilot already assigned to this flight"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id}/pilots [post]
func (h *FlightPilotHandler) AssignPilot(c *gin.Context) {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || flightID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	var req service.AssignPilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.AssignPilot(uint(flightID), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) || errors.Is(err, apperrors.ErrPilotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPilotAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign pilot", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UnassignPilot handles DELETE /api/v1/flights/:id/pilots/:pilot_id
// @Summary Unassign a pilot from a flight
// @Description Remove an existing pilot assignment from a flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param pilot_id path int true "Pilot ID"
// @Success 204 "Successfully unassigned pilot"
// @Failure 400 {object} map[string]interface{} "Invalid flight or pilot ID"
// @Failure 404 {object} map[string]interface{} "Flight, pilot or assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id}/pilots/{pilot_id} [delete]
func (h *FlightPilotHandler) UnassignPilot(c *gin.Context) {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || flightID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	pilotID, err := strconv.ParseUint(c.Param("pilot_id"), 10, 32)
	if err != nil || pilotID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pilot ID: must be a positive integer"})
		return
	}

	if err := h.service.UnassignPilot(uint(flightID), uint(pilotID)); err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) || errors.Is(err, apperrors.ErrPilotNotFound) ||
			errors.Is(err, apperrors.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign pilot", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPilotsByFlight handles GET /api/v1/flights/:id/pilots
// @Summary Get pilots by flight
// @Description Get all pilots assigned to a specific flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {array} service.PilotResponse "Successfully retrieved pilots"
// @Failure 400 {object} map[string]interface{} "Invalid flight ID"
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id}/pilots [get]
func (h *FlightPilotHandler) GetPilotsByFlight(c *gin.Context) {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || flightID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	pilots, err := h.service.GetPilotsByFlight(uint(flightID))
	if err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pilots", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pilots)
}

// GetFlightsByPilot handles GET /api/v1/pilots/:id/flights
// @Summary Get flights by pilot
// @Description Get all flights a specific pilot is assigned to
// @Tags pilots
// @Accept json
// @Produce json
// @Param id path int true "Pilot ID"
// @Success 200 {array} service.FlightResponse "Successfully retrieved flights"
// @Failure 400 {object} map[string]interface{} "Invalid pilot ID"
// @Failure 404 {object} map[string]interface{} "Pilot not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots/{id}/flights [get]
func (h *FlightPilotHandler) GetFlightsByPilot(c *gin.Context) {
	pilotID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || pilotID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pilot ID: must be a positive integer"})
		return
	}

	flights, err := h.service.GetFlightsByPilot(uint(pilotID))
	if err != nil {
		if errors.Is(err, apperrors.ErrPilotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flights", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flights)
}
