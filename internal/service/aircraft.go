package service

import (
	"errors"
	"fmt"

	"flight-scheduler-backend/internal/database/models"
	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AircraftService handles business logic for aircrafts
type AircraftService struct {
	repo      repository.AircraftRepositoryInterface
	validator *validator.Validate
}

// NewAircraftService creates a new aircraft service
func NewAircraftService(repo repository.AircraftRepositoryInterface, validator *validator.Validate) *AircraftService {
	return &AircraftService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAircraftRequest represents the request to create an aircraft
type CreateAircraftRequest struct {
	Type string `json:"type" validate:"required,min=1,max=100"`
}

// UpdateAircraftRequest represents the request to update an aircraft
type UpdateAircraftRequest struct {
	Type string `json:"type" validate:"required,min=1,max=100"`
}

// AircraftResponse represents the response for aircraft operations
type AircraftResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AircraftListResponse represents a paginated list of aircrafts
type AircraftListResponse struct {
	Aircrafts []AircraftResponse `json:"aircrafts"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new aircraft
func (s *AircraftService) Create(req *CreateAircraftRequest) (*AircraftResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	aircraft := &models.Aircraft{
		Type: req.Type,
	}

	if err := s.repo.Create(aircraft); err != nil {
		return nil, fmt.Errorf("failed to create aircraft: %w", err)
	}

	return s.toResponse(aircraft), nil
}

// GetByID retrieves an aircraft by ID
func (s *AircraftService) GetByID(id uint) (*AircraftResponse, error) {
	aircraft, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}

	return s.toResponse(aircraft), nil
}

// GetAll retrieves all aircrafts with pagination
func (s *AircraftService) GetAll(page, pageSize int) (*AircraftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	aircrafts, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get aircrafts: %w", err)
	}

	responses := make([]AircraftResponse, len(aircrafts))
	for i, aircraft := range aircrafts {
		responses[i] = *s.toResponse(&aircraft)
	}

	return &AircraftListResponse{
		Aircrafts: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update replaces the mutable fields of an aircraft
func (s *AircraftService) Update(id uint, req *UpdateAircraftRequest) error {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	// Get existing aircraft
	aircraft, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAircraftNotFound
		}
		return fmt.Errorf("failed to get aircraft: %w", err)
	}

	// Update fields
	aircraft.Type = req.Type

	if err := s.repo.Update(aircraft); err != nil {
		return fmt.Errorf("failed to update aircraft: %w", err)
	}

	return nil
}

// Delete deletes an aircraft and, through the schema's cascade rules, all
// flights operated by it along with their pilot assignments
func (s *AircraftService) Delete(id uint) error {
	// Check if aircraft exists
	exists, err := s.repo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check aircraft: %w", err)
	}
	if !exists {
		return apperrors.ErrAircraftNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete aircraft: %w", err)
	}

	return nil
}

// toResponse converts an aircraft model to response
func (s *AircraftService) toResponse(aircraft *models.Aircraft) *AircraftResponse {
	return &AircraftResponse{
		ID:        aircraft.ID,
		Type:      aircraft.Type,
		CreatedAt: aircraft.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: aircraft.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
