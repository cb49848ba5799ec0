package service

import (
	"errors"
	"fmt"
	"time"

	"flight-scheduler-backend/internal/database/models"
	apperrors "flight-scheduler-backend/internal/errors"
	"flight-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// FlightPilotService handles business logic for pilot assignments
type FlightPilotService struct {
	repo       repository.FlightPilotRepositoryInterface
	flightRepo repository.FlightRepositoryInterface
	pilotRepo  repository.PilotRepositoryInterface
	validator  *validator.Validate
}

// NewFlightPilotService creates a new flight pilot service
func NewFlightPilotService(
	repo repository.FlightPilotRepositoryInterface,
	flightRepo repository.FlightRepositoryInterface,
	pilotRepo repository.PilotRepositoryInterface,
	validator *validator.Validate,
) *FlightPilotService {
	return &FlightPilotService{
		repo:       repo,
		flightRepo: flightRepo,
		pilotRepo:  pilotRepo,
		validator:  validator,
	}
}

// AssignPilotRequest represents the request to assign a pilot to a flight
type AssignPilotRequest struct {
	PilotID uint `json:"pilot_id" validate:"required"`
}

// FlightPilotResponse represents the response for pilot assignment operations
type FlightPilotResponse struct {
	ID         uint   `json:"id"`
	FlightID   uint   `json:"flight_id"`
	PilotID    uint   `json:"pilot_id"`
	AssignedAt string `json:"assigned_at"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// AssignPilot assigns a pilot to a flight. A pilot can be assigned to a
// flight at most once.
func (s *FlightPilotService) AssignPilot(flightID uint, req *AssignPilotRequest) (*FlightPilotResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Validate flight exists
	_, err := s.flightRepo.GetByID(flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to verify flight: %w", err)
	}

	// Validate pilot exists
	_, err = s.pilotRepo.GetByID(req.PilotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPilotNotFound
		}
		return nil, fmt.Errorf("failed to verify pilot: %w", err)
	}

	// Check if assignment already exists
	exists, err := s.repo.Exists(flightID, req.PilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPilotAlreadyAssigned
	}

	// Create assignment
	assignment := &models.FlightPilot{
		FlightID:   flightID,
		PilotID:    req.PilotID,
		AssignedAt: time.Now(),
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create pilot assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// UnassignPilot removes a pilot from a flight
func (s *FlightPilotService) UnassignPilot(flightID, pilotID uint) error {
	// Validate flight exists
	_, err := s.flightRepo.GetByID(flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFlightNotFound
		}
		return fmt.Errorf("failed to verify flight: %w", err)
	}

	// Validate pilot exists
	_, err = s.pilotRepo.GetByID(pilotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPilotNotFound
		}
		return fmt.Errorf("failed to verify pilot: %w", err)
	}

	// Check if assignment exists
	exists, err := s.repo.Exists(flightID, pilotID)
	if err != nil {
		return fmt.Errorf("failed to check assignment existence: %w", err)
	}
	if !exists {
		return apperrors.ErrAssignmentNotFound
	}

	if err := s.repo.Delete(flightID, pilotID); err != nil {
		return fmt.Errorf("failed to unassign pilot: %w", err)
	}

	return nil
}

// GetPilotsByFlight retrieves all pilots assigned to a flight
func (s *FlightPilotService) GetPilotsByFlight(flightID uint) ([]PilotResponse, error) {
	// Validate flight exists
	_, err := s.flightRepo.GetByID(flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to verify flight: %w", err)
	}

	pilots, err := s.repo.GetPilotsByFlightID(flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pilots for flight: %w", err)
	}

	responses := make([]PilotResponse, len(pilots))
	for i, pilot := range pilots {
		responses[i] = PilotResponse{
			ID:          pilot.ID,
			FirstName:   pilot.FirstName,
			LastName:    pilot.LastName,
			DateOfBirth: pilot.DateOfBirth.String(),
			CreatedAt:   pilot.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:   pilot.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, nil
}

// GetFlightsByPilot retrieves all flights a pilot is assigned to
func (s *FlightPilotService) GetFlightsByPilot(pilotID uint) ([]FlightResponse, error) {
	// Validate pilot exists
	_, err := s.pilotRepo.GetByID(pilotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPilotNotFound
		}
		return nil, fmt.Errorf("failed to verify pilot: %w", err)
	}

	flights, err := s.repo.GetFlightsByPilotID(pilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flights for pilot: %w", err)
	}

	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = FlightResponse{
			ID:              flight.ID,
			AircraftID:      flight.AircraftID,
			Origin:          flight.Origin,
			Destination:     flight.Destination,
			Route:           flight.Route,
			OriginTerminal:  flight.OriginTerminal,
			ArrivalTerminal: flight.ArrivalTerminal,
			DepartureGate:   flight.DepartureGate,
			ArrivalGate:     flight.ArrivalGate,
			DepartureDate:   flight.DepartureDate.String(),
			DepartureTime:   flight.DepartureTime.String(),
			ArrivalDate:     flight.ArrivalDate.String(),
			ArrivalTime:     flight.ArrivalTime.String(),
			CreatedAt:       flight.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:       flight.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, nil
}

// IsAssigned checks if a pilot is assigned to a flight
func (s *FlightPilotService) IsAssigned(flightID, pilotID uint) (bool, error) {
	return s.repo.Exists(flightID, pilotID)
}

// toResponse converts a pilot assignment model to response
func (s *FlightPilotService) toResponse(assignment *models.FlightPilot) *FlightPilotResponse {
	return &FlightPilotResponse{
		ID:         assignment.ID,
		FlightID:   assignment.FlightID,
		PilotID:    assignment.PilotID,
		AssignedAt: assignment.AssignedAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:  assignment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  assignment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
