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

// FlightService handles business logic for flights
type FlightService struct {
	repo         repository.FlightRepositoryInterface
	aircraftRepo repository.AircraftRepositoryInterface
	validator    *validator.Validate
}

// NewFlightService creates a new flight service
func NewFlightService(repo repository.FlightRepositoryInterface, aircraftRepo repository.AircraftRepositoryInterface, validator *validator.Validate) *FlightService {
	return &FlightService{
		repo:         repo,
		aircraftRepo: aircraftRepo,
		validator:    validator,
	}
}

// CreateFlightRequest represents the request to create a flight
type CreateFlightRequest struct {
	AircraftID      uint             `json:"aircraft_id" validate:"required"`
	Origin          string           `json:"origin" validate:"required,min=1,max=100"`
	Destination     string           `json:"destination" validate:"required,min=1,max=100"`
	Route           string           `json:"route,omitempty" validate:"max=200"`
	OriginTerminal  string           `json:"origin_terminal,omitempty" validate:"max=50"`
	ArrivalTerminal string           `json:"arrival_terminal,omitempty" validate:"max=50"`
	DepartureGate   string           `json:"departure_gate,omitempty" validate:"max=50"`
	ArrivalGate     string           `json:"arrival_gate,omitempty" validate:"max=50"`
	DepartureDate   models.Date      `json:"departure_date" validate:"required" swaggertype:"string" example:"2025-06-01"`
	DepartureTime   models.TimeOfDay `json:"departure_time" validate:"required" swaggertype:"string" example:"14:30:00"`
	ArrivalDate     models.Date      `json:"arrival_date" validate:"required" swaggertype:"string" example:"2025-06-01"`
	ArrivalTime     models.TimeOfDay `json:"arrival_time" validate:"required" swaggertype:"string" example:"18:45:00"`
}

// UpdateFlightRequest represents the request to update a flight
type UpdateFlightRequest struct {
	AircraftID      uint             `json:"aircraft_id" validate:"required"`
	Origin          string           `json:"origin" validate:"required,min=1,max=100"`
	Destination     string           `json:"destination" validate:"required,min=1,max=100"`
	Route           string           `json:"route,omitempty" validate:"max=200"`
	OriginTerminal  string           `json:"origin_terminal,omitempty" validate:"max=50"`
	ArrivalTerminal string           `json:"arrival_terminal,omitempty" validate:"max=50"`
	DepartureGate   string           `json:"departure_gate,omitempty" validate:"max=50"`
	ArrivalGate     string           `json:"arrival_gate,omitempty" validate:"max=50"`
	DepartureDate   models.Date      `json:"departure_date" validate:"required" swaggertype:"string" example:"2025-06-01"`
	DepartureTime   models.TimeOfDay `json:"departure_time" validate:"required" swaggertype:"string" example:"14:30:00"`
	ArrivalDate     models.Date      `json:"arrival_date" validate:"required" swaggertype:"string" example:"2025-06-01"`
	ArrivalTime     models.TimeOfDay `json:"arrival_time" validate:"required" swaggertype:"string" example:"18:45:00"`
}

// FlightResponse represents the response for flight operations
type FlightResponse struct {
	ID              uint   `json:"id"`
	AircraftID      uint   `json:"aircraft_id"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Route           string `json:"route,omitempty"`
	OriginTerminal  string `json:"origin_terminal,omitempty"`
	ArrivalTerminal string `json:"arrival_terminal,omitempty"`
	DepartureGate   string `json:"departure_gate,omitempty"`
	ArrivalGate     string `json:"arrival_gate,omitempty"`
	DepartureDate   string `json:"departure_date"`
	DepartureTime   string `json:"departure_time"`
	ArrivalDate     string `json:"arrival_date"`
	ArrivalTime     string `json:"arrival_time"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// FlightListResponse represents a paginated list of flights
type FlightListResponse struct {
	Flights  []FlightResponse `json:"flights"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new flight
func (s *FlightService) Create(req *CreateFlightRequest) (*FlightResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Verify the referenced aircraft exists
	exists, err := s.aircraftRepo.Exists(req.AircraftID)
	if err != nil {
		return nil, fmt.Errorf("failed to check aircraft: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrInvalidAircraftReference
	}

	flight := &models.Flight{
		AircraftID:      req.AircraftID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		Route:           req.Route,
		OriginTerminal:  req.OriginTerminal,
		ArrivalTerminal: req.ArrivalTerminal,
		DepartureGate:   req.DepartureGate,
		ArrivalGate:     req.ArrivalGate,
		DepartureDate:   req.DepartureDate,
		DepartureTime:   req.DepartureTime,
		ArrivalDate:     req.ArrivalDate,
		ArrivalTime:     req.ArrivalTime,
	}

	if err := s.repo.Create(flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	return s.toResponse(flight), nil
}

// GetByID retrieves a flight by ID
func (s *FlightService) GetByID(id uint) (*FlightResponse, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	return s.toResponse(flight), nil
}

// GetAll retrieves all flights with pagination
func (s *FlightService) GetAll(page, pageSize int) (*FlightListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	flights, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get flights: %w", err)
	}

	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = *s.toResponse(&flight)
	}

	return &FlightListResponse{
		Flights:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByAircraft retrieves all flights operated by an aircraft
func (s *FlightService) GetByAircraft(aircraftID uint) ([]FlightResponse, error) {
	// Verify the aircraft exists
	exists, err := s.aircraftRepo.Exists(aircraftID)
	if err != nil {
		return nil, fmt.Errorf("failed to check aircraft: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrAircraftNotFound
	}

	flights, err := s.repo.GetByAircraftID(aircraftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flights for aircraft: %w", err)
	}

	responses := make([]FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = *s.toResponse(&flight)
	}

	return responses, nil
}

// Update replaces the mutable fields of a flight. The referenced aircraft is
// re-verified since a full replace may move the flight to another aircraft.
func (s *FlightService) Update(id uint, req *UpdateFlightRequest) error {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	// Get existing flight
	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFlightNotFound
		}
		return fmt.Errorf("failed to get flight: %w", err)
	}

	// Verify the referenced aircraft exists
	exists, err := s.aircraftRepo.Exists(req.AircraftID)
	if err != nil {
		return fmt.Errorf("failed to check aircraft: %w", err)
	}
	if !exists {
		return apperrors.ErrInvalidAircraftReference
	}

	// Update fields
	flight.AircraftID = req.AircraftID
	flight.Origin = req.Origin
	flight.Destination = req.Destination
	flight.Route = req.Route
	flight.OriginTerminal = req.OriginTerminal
	flight.ArrivalTerminal = req.ArrivalTerminal
	flight.DepartureGate = req.DepartureGate
	flight.ArrivalGate = req.ArrivalGate
	flight.DepartureDate = req.DepartureDate
	flight.DepartureTime = req.DepartureTime
	flight.ArrivalDate = req.ArrivalDate
	flight.ArrivalTime = req.ArrivalTime

	if err := s.repo.Update(flight); err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
	}

	return nil
}

// Delete deletes a flight and, through the schema's cascade rules, its pilot
// assignments
func (s *FlightService) Delete(id uint) error {
	// Check if flight exists
	exists, err := s.repo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to check flight: %w", err)
	}
	if !exists {
		return apperrors.ErrFlightNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}

	return nil
}

// toResponse converts a flight model to response
func (s *FlightService) toResponse(flight *models.Flight) *FlightResponse {
	return &FlightResponse{
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
