package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AircraftHandler handles HTTP requests for aircrafts
type AircraftHandler struct {
	service service.AircraftServiceInterface
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(service service.AircraftServiceInterface) *AircraftHandler {
	return &AircraftHandler{service: service}
}

// CreateAircraft handles POST /api/v1/aircrafts
// @Summary Create a new aircraft
// @Description Create a new aircraft with the provided details
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param aircraft body service.CreateAircraftRequest true "Aircraft data"
// @Success 201 {object} service.AircraftResponse "Successfully created aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts [post]
func (h *AircraftHandler) CreateAircraft(c *gin.Context) {
	var req service.CreateAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	aircraft, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create aircraft", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, aircraft)
}

// GetAircraft handles GET /api/v1/aircrafts/:id
// @Summary Get aircraft by ID
// @Description Get a specific aircraft by its ID
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param id path int true "Aircraft ID"
// @Success 200 {object} service.AircraftResponse "Successfully retrieved aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft ID"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts/{id} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID: must be a positive integer"})
		return
	}

	aircraft, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrAircraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get aircraft", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// ListAircrafts handles GET /api/v1/aircrafts
// @Summary List all aircrafts
// @Description Get all aircrafts with pagination support
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AircraftListResponse "Successfully retrieved aircrafts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts [get]
func (h *AircraftHandler) ListAircrafts(c *gin.Context) {
	// Parse pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	aircrafts, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get aircrafts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, aircrafts)
}

// UpdateAircraft handles PUT /api/v1/aircrafts/:id
// @Summary Update aircraft
// @Description Replace the mutable fields of an aircraft by ID
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param id path int true "Aircraft ID"
// @Param aircraft body service.UpdateAircraftRequest true "Updated aircraft data"
// @Success 204 "Successfully updated aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts/{id} [put]
func (h *AircraftHandler) UpdateAircraft(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID: must be a positive integer"})
		return
	}

	var req service.UpdateAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(uint(id), &req); err != nil {
		if errors.Is(err, apperrors.ErrAircraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update aircraft", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAircraft handles DELETE /api/v1/aircrafts/:id
// @Summary Delete aircraft
// @Description Delete an aircraft by ID along with its flights and their pilot assignments
// @Tags aircrafts
// @Accept json
// @Produce json
// @Param id path int true "Aircraft ID"
// @Success 204 "Successfully deleted aircraft"
// @Failure 400 {object} map[string]interface{} "Invalid aircraft ID"
// @Failure 404 {object} map[string]interface{} "Aircraft not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /aircrafts/{id} [delete]
func (h *AircraftHandler) DeleteAircraft(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid aircraft ID: must be a positive integer"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrAircraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete aircraft", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
