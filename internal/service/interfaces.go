package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AircraftServiceInterface defines the interface for aircraft service
type AircraftServiceInterface interface {
	Create(req *CreateAircraftRequest) (*AircraftResponse, error)
	GetByID(id uint) (*AircraftResponse, error)
	GetAll(page, pageSize int) (*AircraftListResponse, error)
	Update(id uint, req *UpdateAircraftRequest) error
	Delete(id uint) error
}

// FlightServiceInterface defines the interface for flight service
type FlightServiceInterface interface {
	Create(req *CreateFlightRequest) (*FlightResponse, error)
	GetByID(id uint) (*FlightResponse, error)
	GetAll(page, pageSize int) (*FlightListResponse, error)
	GetByAircraft(aircraftID uint) ([]FlightResponse, error)
	Update(id uint, req *UpdateFlightRequest) error
	Delete(id uint) error
}

// PilotServiceInterface defines the interface for pilot service
type PilotServiceInterface interface {
	Create(req *CreatePilotRequest) (*PilotResponse, error)
	GetByID(id uint) (*PilotResponse, error)
	GetAll(page, pageSize int) (*PilotListResponse, error)
	Update(id uint, req *UpdatePilotRequest) error
	Delete(id uint) error
}

// FlightPilotServiceInterface defines the interface for pilot assignment service
type FlightPilotServiceInterface interface {
	AssignPilot(flightID uint, req *AssignPilotRequest) (*FlightPilotResponse, error)
	UnassignPilot(flightID, pilotID uint) error
	GetPilotsByFlight(flightID uint) ([]PilotResponse, error)
	GetFlightsByPilot(pilotID uint) ([]FlightResponse, error)
	IsAssigned(flightID, pilotID uint) (bool, error)
}

// StatisticsServiceInterface defines the interface for flight statistics service
type StatisticsServiceInterface interface {
	GetFlightStatistics() (*FlightStatisticsResponse, error)
}
