package testutils

import (
	"time"

	"flight-scheduler-backend/internal/database/models"
)

// AircraftFactory provides methods to create test Aircraft data
type AircraftFactory struct{}

// NewAircraftFactory creates a new AircraftFactory
func NewAircraftFactory() *AircraftFactory {
	return &AircraftFactory{}
}

// Create creates a test Aircraft with default values. The ID is left zero and
// assigned by the database on insert.
func (f *AircraftFactory) Create() *models.Aircraft {
	return &models.Aircraft{
		Type: "Boeing 737",
	}
}

// WithType sets a custom type for the aircraft
func (f *AircraftFactory) WithType(aircraftType string) *models.Aircraft {
	aircraft := f.Create()
	aircraft.Type = aircraftType
	return aircraft
}

// PilotFactory provides methods to create test Pilot data
type PilotFactory struct{}

// NewPilotFactory creates a new PilotFactory
func NewPilotFactory() *PilotFactory {
	return &PilotFactory{}
}

// Create creates a test Pilot with default values
func (f *PilotFactory) Create() *models.Pilot {
	return &models.Pilot{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: models.NewDate(1985, time.April, 12),
	}
}

// WithName sets a custom name for the pilot
func (f *PilotFactory) WithName(firstName, lastName string) *models.Pilot {
	pilot := f.Create()
	pilot.FirstName = firstName
	pilot.LastName = lastName
	return pilot
}

// WithDateOfBirth sets a custom date of birth for the pilot
func (f *PilotFactory) WithDateOfBirth(dob models.Date) *models.Pilot {
	pilot := f.Create()
	pilot.DateOfBirth = dob
	return pilot
}

// FlightFactory provides methods to create test Flight data
type FlightFactory struct{}

// NewFlightFactory creates a new FlightFactory
func NewFlightFactory() *FlightFactory {
	return &FlightFactory{}
}

// Create creates a test Flight with default values. AircraftID is left zero;
// callers must point it at a persisted aircraft before saving.
func (f *FlightFactory) Create() *models.Flight {
	return &models.Flight{
		Origin:          "JFK",
		Destination:     "LAX",
		Route:           "JFK-LAX",
		OriginTerminal:  "T4",
		ArrivalTerminal: "TB",
		DepartureGate:   "B22",
		ArrivalGate:     "130",
		DepartureDate:   models.NewDate(2025, time.June, 1),
		DepartureTime:   models.NewTimeOfDay(9, 30, 0),
		ArrivalDate:     models.NewDate(2025, time.June, 1),
		ArrivalTime:     models.NewTimeOfDay(12, 45, 0),
	}
}

// WithAircraft sets the aircraft ID for the flight
func (f *FlightFactory) WithAircraft(aircraftID uint) *models.Flight {
	flight := f.Create()
	flight.AircraftID = aircraftID
	return flight
}

// WithDestination sets a custom destination for the flight
func (f *FlightFactory) WithDestination(destination string) *models.Flight {
	flight := f.Create()
	flight.Destination = destination
	return flight
}

// FlightPilotFactory provides methods to create test FlightPilot data
type FlightPilotFactory struct{}

// NewFlightPilotFactory creates a new FlightPilotFactory
func NewFlightPilotFactory() *FlightPilotFactory {
	return &FlightPilotFactory{}
}

// Create creates a test FlightPilot assignment with default values. The
// flight and pilot IDs are left zero; callers must point them at persisted
// rows before saving.
func (f *FlightPilotFactory) Create() *models.FlightPilot {
	return &models.FlightPilot{
		AssignedAt: time.Now(),
	}
}

// WithPair sets the flight and pilot IDs for the assignment
func (f *FlightPilotFactory) WithPair(flightID, pilotID uint) *models.FlightPilot {
	assignment := f.Create()
	assignment.FlightID = flightID
	assignment.PilotID = pilotID
	return assignment
}

// FactorySet provides access to all factories
type FactorySet struct {
	Aircraft    *AircraftFactory
	Pilot       *PilotFactory
	Flight      *FlightFactory
	FlightPilot *FlightPilotFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Aircraft:    NewAircraftFactory(),
		Pilot:       NewPilotFactory(),
		Flight:      NewFlightFactory(),
		FlightPilot: NewFlightPilotFactory(),
	}
}
