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

// PilotService handles business logic for pilots
type PilotService struct {
	repo      repository.PilotRepositoryInterface
	validator *validator.Validate
}

// NewPilotService creates a new pilot service
func NewPilotService(repo repository.PilotRepositoryInterface, validator *validator.Validate) *PilotService {
	return &PilotService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePilotRequest represents the request to create a pilot
type CreatePilotRequest struct {
	FirstName   string      `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string      `json:"last_name" validate:"required,min=1,max=100"`
	DateOfBirth models.Date `json:"date_of_birth" validate:"required" swaggertype:"string" example:"1985-04-12"`
}

// UpdatePilotRequest represents the request to update a pilot
type UpdatePilotRequest struct {
	FirstName   string      `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string      `json:"last_name" validate:"required,min=1,max=100"`
	DateOfBirth models.Date `json:"date_of_birth" validate:"required" swaggertype:"string" example:"1985-04-12"`
}

// PilotResponse represents the response for pilot operations
type PilotResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PilotListResponse represents a paginated list of pilots
type PilotListResponse struct {
	Pilots   []PilotResponse `json:"pilots"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new pilot
func (s *PilotService) Create(req *CreatePilotRequest) (*PilotResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	pilot := &models.Pilot{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}

	if err := s.repo.Create(pilot); err != nil {
		return nil, fmt.Errorf("failed to create pilot: %w", err)
	}

	return s.toResponse(pilot), nil
}

// GetByID retrieves a pilot by ID
func (s *PilotService) GetByID(id uint) (*PilotResponse, error) {
	pilot, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPilotNotFound
		}
		return nil, fmt.Errorf("failed to get pilot: %w", err)
	}

	return s.toResponse(pilot), nil
}

// GetAll retrieves all pilots with pagination
func (s *PilotService) GetAll(page, pageSize int) (*PilotListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	pilots, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get pilots: %w", err)
	}

	responses := make([]PilotResponse, len(pilots))
	for i, pilot := range pilots {
		responses[i] = *s.toResponse(&pilot)
	}

	return &PilotListResponse{
		Pilots:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update replaces the mutable fields of a pilot
func (s *PilotService) Update(id uint, req *UpdatePilotRequest) error {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	// Get existing pilot
	pilot, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPilotNotFound
		}
		return fmt.Errorf("failed to get pilot: %w", err)
	}

	// Update fields
	pilot.FirstName = req.FirstName
	pilot.LastName = req.LastName
	pilot.DateOfBirth = req.DateOfBirth

	if err := s.repo.Update(pilot); err != nil {
		return fmt.Errorf("failed to update pilot: %w", err)
	}

	return nil
}

// Delete deletes a pilot and, through the schema's cascade rules, the
// pilot's flight assignments. Flights themselves are kept.
func (s *PilotService) Delete(id uint) error {
	// Check if pilot exists
	exists, err := s.repo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check pilot: %w", err)
	}
	if !exists {
		return apperrors.ErrPilotNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pilot: %w", err)
	}

	return nil
}

// toResponse converts a pilot model to response
func (s *PilotService) toResponse(pilot *models.Pilot) *PilotResponse {
	return &PilotResponse{
		ID:          pilot.ID,
		FirstName:   pilot.FirstName,
		LastName:    pilot.LastName,
		DateOfBirth: pilot.DateOfBirth.String(),
		CreatedAt:   pilot.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   pilot.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
