package repository

import (
	"flight-scheduler-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AircraftRepositoryInterface defines the interface for aircraft repository operations
type AircraftRepositoryInterface interface {
	Create(aircraft *models.Aircraft) error
	GetByID(id uint) (*models.Aircraft, error)
	GetAll(limit, offset int) ([]models.Aircraft, int64, error)
	Update(aircraft *models.Aircraft) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

// FlightRepositoryInterface defines the interface for flight repository operations
type FlightRepositoryInterface interface {
	Create(flight *models.Flight) error
	GetByID(id uint) (*models.Flight, error)
	GetAll(limit, offset int) ([]models.Flight, int64, error)
	GetByAircraftID(aircraftID uint) ([]models.Flight, error)
	Update(flight *models.Flight) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

// PilotRepositoryInterface defines the interface for pilot repository operations
type PilotRepositoryInterface interface {
	Create(pilot *models.Pilot) error
	GetByID(id uint) (*models.Pilot, error)
	GetAll(limit, offset int) ([]models.Pilot, int64, error)
	Update(pilot *models.Pilot) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

// FlightPilotRepositoryInterface defines the interface for pilot assignment repository operations
type FlightPilotRepositoryInterface interface {
	Create(assignment *models.FlightPilot) error
	GetByFlightID(flightID uint) ([]models.FlightPilot, error)
	GetByPilotID(pilotID uint) ([]models.FlightPilot, error)
	GetPilotsByFlightID(flightID uint) ([]models.Pilot, error)
	GetFlightsByPilotID(pilotID uint) ([]models.Flight, error)
	Delete(flightID, pilotID uint) error
	Exists(flightID, pilotID uint) (bool, error)
}

// StatisticsRepositoryInterface defines the interface for flight statistics repository operations
type StatisticsRepositoryInterface interface {
	CountFlights() (int64, error)
	MostCommonDestination() (*DestinationCount, error)
	MostCommonAircraftType() (*AircraftTypeCount, error)
}
