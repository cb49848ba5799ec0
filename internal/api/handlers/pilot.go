package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PilotHandler handles HTTP requests for pilots
type PilotHandler struct {
	service service.PilotServiceInterface
}

// NewPilotHandler creates a new pilot handler
func NewPilotHandler(service service.PilotServiceInterface) *PilotHandler {
	return &PilotHandler{service: service}
}

// CreatePilot handles POST /api/v1/pilots
// @Summary Create a new pilot
// @Description Create a new pilot with the provided details
// @Tags pilots
// @Accept json
// @Produce json
// @Param pilot body service.CreatePilotRequest true "Pilot data"
// @Success 201 {object} service.PilotResponse "Successfully created pilot"
// @Failure 400 {object} map[string]interface{} "Invalid request body or validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots [post]
func (h *PilotHandler) CreatePilot(c *gin.Context) {
	var req service.CreatePilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	pilot, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pilot", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pilot)
}

// GetPilot handles GET /api/v1/pilots/:id
// @Summary Get pilot by ID
// @Description Get a specific pilot by their ID
// @Tags pilots
// @Accept json
// @Produce json
// @Param id path int true "Pilot ID"
// @Success 200 {object} service.PilotResponse "Successfully retrieved pilot"
// @Failure 400 {object} map[string]interface{} "Invalid pilot ID"
// @Failure 404 {object} map[string]interface{} "Pilot not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots/{id} [get]
func (h *PilotHandler) GetPilot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pilot ID: must be a positive integer"})
		return
	}

	pilot, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrPilotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pilot", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pilot)
}

// ListPilots handles GET /api/v1/pilots
// @Summary List all pilots
// @Description Get all pilots with pagination support
// @Tags pilots
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PilotListResponse "Successfully retrieved pilots"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots [get]
func (h *PilotHandler) ListPilots(c *gin.Context) {
	// Parse pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	pilots, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pilots", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pilots)
}

// UpdatePilot handles PUT /api/v1/pilots/:id
// @Summary Update pilot
// @Description Replace the mutable fields of a pilot by ID
// @Tags pilots
// @Accept json
// @Produce json
// @Param id path int true "Pilot ID"
// @Param pilot body service.UpdatePilotRequest true "Updated pilot data"
// @Success 204 "Successfully updated pilot"
// @Failure 400 {object} map[string]interface{} "Invalid request or validation failed"
// @Failure 404 {object} map[string]interface{} "Pilot not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots/{id} [put]
func (h *PilotHandler) UpdatePilot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pilot ID: must be a positive integer"})
		return
	}

	var req service.UpdatePilotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(uint(id), &req); err != nil {
		if errors.Is(err, apperrors.ErrPilotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pilot", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePilot handles DELETE /api/v1/pilots/:id
// @Summary Delete pilot
// @Description Delete a pilot by ID along with their flight assignments
// @Tags pilots
// @Accept json
// @Produce json
// @Param id path int true "Pilot ID"
// @Success 204 "Successfully deleted pilot"
// @Failure 400 {object} map[string]interface{} "Invalid pilot ID"
// @Failure 404 {object} map[string]interface{} "Pilot not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /pilots/{id} [delete]
func (h *PilotHandler) DeletePilot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pilot ID: must be a positive integer"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrPilotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pilot", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
