package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FlightHandler handles HTTP requests for flights
type FlightHandler struct {
	service service.FlightServiceInterface
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service service.FlightServiceInterface) *FlightHandler {
	return &FlightHandler{service: service}
}

// CreateFlight handles POST /api/v1/flights
// @Summary Create a new flight
// @Description Create a new flight for an existing aircraft
// @Tags flights
// @Accept json
// @Produce json
// @Param flight body service.CreateFlightRequest true "Flight data"
// @Success 201 {object} service.FlightResponse "Successfully created flight"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failed"
// @Failure 422 {object} map[string]interface{} "Referenced aircraft does not exist"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights [post]
func (h *FlightHandler) CreateFlight(c *gin.Context) {
	var req service.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	flight, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForeignKeyViolation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create flight", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, flight)
}

// GetFlight handles GET /api/v1/flights/:id
// @Summary Get flight by ID
// @Description Get a specific flight by its ID
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} service.FlightResponse "Successfully retrieved flight"
// @Failure 400 {object} map[string]interface{} "Invalid flight ID"
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id} [get]
func (h *FlightHandler) GetFlight(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	flight, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flight", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flight)
}

// ListFlights handles GET /api/v1/flights
// @Summary List all flights
// @Description Get all flights with pagination support
// @Tags flights
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FlightListResponse "Successfully retrieved flights"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights [get]
func (h *FlightHandler) ListFlights(c *gin.Context) {
	// Parse pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	flights, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flights", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flights)
}

// UpdateFlight handles PUT /api/v1/flights/:id
// @Summary Update flight
// @Description Replace the mutable fields of a flight by ID
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param flight body service.UpdateFlightRequest true "Updated flight data"
// @Success 204 "Successfully updated flight"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Failure 422 {object} map[string]interface{} "Referenced aircraft does not exist"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id} [put]
func (h *FlightHandler) UpdateFlight(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	var req service.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(uint(id), &req); err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsForeignKeyViolation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update flight", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteFlight handles DELETE /api/v1/flights/:id
// @Summary Delete flight
// @Description Delete a flight by ID along with its pilot assignments
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Success 204 "Successfully deleted flight"
// @Failure 400 {object} map[string]interface{} "Invalid flight ID"
// @Failure 404 {object} map[string]interface{} "Flight not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight ID: must be a positive integer"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete flight", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetFlightsByAircraft handles GET /api/v1/aircrafts/:id/flights
// @Summary Get flights by aircraft
// @Description Get all flights scheduled for a specific aircraft
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param id path int true "Aircraft ID"
// @Success 200 {array} service.FlightResponse "Successfully retrieved flights"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft ID"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts/{id}/flights [get]
func (h *FlightHandler) GetFlightsByAircraft(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID: must be a positive integer"})
		return
	}

	flights, err := h.service.GetByAircraft(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrAircraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flights", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flights)
}
