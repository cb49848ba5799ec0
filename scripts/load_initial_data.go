package main

import (
	"flight-scheduler-backend/internal/config"
	"flight-scheduler-backend/internal/database"
	"flight-scheduler-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AircraftData struct {
	Type string `yaml:"type"`
}

type PilotData struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	DateOfBirth string `yaml:"date_of_birth"`
}

type FlightData struct {
	AircraftType    string `yaml:"aircraft_type"`
	Origin          string `yaml:"origin"`
	Destination     string `yaml:"destination"`
	Route           string `yaml:"route,omitempty"`
	OriginTerminal  string `yaml:"origin_terminal,omitempty"`
	ArrivalTerminal string `yaml:"arrival_terminal,omitempty"`
	DepartureGate   string `yaml:"departure_gate,omitempty"`
	ArrivalGate     string `yaml:"arrival_gate,omitempty"`
	DepartureDate   string `yaml:"departure_date"`
	DepartureTime   string `yaml:"departure_time"`
	ArrivalDate     string `yaml:"arrival_date"`
	ArrivalTime     string `yaml:"arrival_time"`
}

type AssignmentData struct {
	Origin         string `yaml:"origin"`
	Destination    string `yaml:"destination"`
	DepartureDate  string `yaml:"departure_date"`
	DepartureTime  string `yaml:"departure_time"`
	PilotFirstName string `yaml:"pilot_first_name"`
	PilotLastName  string `yaml:"pilot_last_name"`
}

// File structures
type AircraftsFile struct {
	Aircrafts []AircraftData `yaml:"aircrafts"`
}

type PilotsFile struct {
	Pilots []PilotData `yaml:"pilots"`
}

type FlightsFile struct {
	Flights []FlightData `yaml:"flights"`
}

type AssignmentsFile struct {
	Assignments []AssignmentData `yaml:"assignments"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	aircrafts, err := loadAircrafts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load aircrafts: %w", err)
	}

	pilots, err := loadPilots(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load pilots: %w", err)
	}

	flights, err := loadFlights(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load flights: %w", err)
	}

	assignments, err := loadAssignments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	// Create aircrafts first
	aircraftMap := make(map[string]*models.Aircraft)
	aircraftCreated := 0
	for _, aircraftData := range aircrafts {
		aircraft, created, err := createAircraft(db, aircraftData)
		if err != nil {
			return fmt.Errorf("failed to create aircraft %s: %w", aircraftData.Type, err)
		}
		aircraftMap[aircraftData.Type] = aircraft
		if created {
			aircraftCreated++
		}
	}
	log.Printf("📋 Aircrafts: %d created, %d total", aircraftCreated, len(aircrafts))

	// Create pilots
	pilotMap := make(map[string]*models.Pilot)
	pilotCreated := 0
	for _, pilotData := range pilots {
		pilot, created, err := createPilot(db, pilotData)
		if err != nil {
			return fmt.Errorf("failed to create pilot %s %s: %w", pilotData.FirstName, pilotData.LastName, err)
		}
		pilotMap[pilotKey(pilotData.FirstName, pilotData.LastName)] = pilot
		if created {
			pilotCreated++
		}
	}
	log.Printf("📋 Pilots: %d created, %d total", pilotCreated, len(pilots))

	// Create flights
	flightMap := make(map[string]*models.Flight)
	flightCreated := 0
	for _, flightData := range flights {
		flight, created, err := createFlight(db, flightData, aircraftMap)
		if err != nil {
			return fmt.Errorf("failed to create flight %s-%s: %w", flightData.Origin, flightData.Destination, err)
		}
		flightMap[flightKey(flightData.Origin, flightData.Destination, flightData.DepartureDate, flightData.DepartureTime)] = flight
		if created {
			flightCreated++
		}
	}
	log.Printf("📋 Flights: %d created, %d total", flightCreated, len(flights))

	// Create pilot assignments
	assignmentCreated := 0
	for _, assignmentData := range assignments {
		_, created, err := createAssignment(db, assignmentData, flightMap, pilotMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create assignment for %s %s: %v", assignmentData.PilotFirstName, assignmentData.PilotLastName, err)
			continue // Continue with other assignments
		}
		if created {
			assignmentCreated++
		}
	}
	log.Printf("📋 Pilot assignments: %d created, %d total", assignmentCreated, len(assignments))

	return nil
}

func loadAircrafts(dataDir string) ([]AircraftData, error) {
	var allAircrafts []AircraftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "aircrafts") {
			var file AircraftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAircrafts = append(allAircrafts, file.Aircrafts...)
		}
		return nil
	})

	return allAircrafts, err
}

func loadPilots(dataDir string) ([]PilotData, error) {
	var allPilots []PilotData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "pilots") {
			var file PilotsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPilots = append(allPilots, file.Pilots...)
		}
		return nil
	})

	return allPilots, err
}

func loadFlights(dataDir string) ([]FlightData, error) {
	var allFlights []FlightData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "flights") {
			var file FlightsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allFlights = append(allFlights, file.Flights...)
		}
		return nil
	})

	return allFlights, err
}

func loadAssignments(dataDir string) ([]AssignmentData, error) {
	var allAssignments []AssignmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "assignments") {
			var file AssignmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAssignments = append(allAssignments, file.Assignments...)
		}
		return nil
	})

	return allAssignments, err
}

func createAircraft(db *gorm.DB, aircraftData AircraftData) (*models.Aircraft, bool, error) {
	var aircraft models.Aircraft
	if err := db.Where("type = ?", aircraftData.Type).First(&aircraft).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			aircraft = models.Aircraft{
				Type: aircraftData.Type,
			}

			if err := db.Create(&aircraft).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create aircraft: %w", err)
			}
			return &aircraft, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query aircraft: %w", err)
		}
	}

	return &aircraft, false, nil // created = false (existing)
}

func createPilot(db *gorm.DB, pilotData PilotData) (*models.Pilot, bool, error) {
	dob, err := models.ParseDate(pilotData.DateOfBirth)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date_of_birth for pilot %s %s: %w", pilotData.FirstName, pilotData.LastName, err)
	}

	var pilot models.Pilot
	if err := db.Where("first_name = ? AND last_name = ? AND date_of_birth = ?",
		pilotData.FirstName, pilotData.LastName, dob).First(&pilot).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			pilot = models.Pilot{
				FirstName:   pilotData.FirstName,
				LastName:    pilotData.LastName,
				DateOfBirth: dob,
			}

			if err := db.Create(&pilot).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create pilot: %w", err)
			}
			return &pilot, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query pilot: %w", err)
		}
	}

	return &pilot, false, nil // created = false (existing)
}

func createFlight(db *gorm.DB, flightData FlightData, aircraftMap map[string]*models.Aircraft) (*models.Flight, bool, error) {
	aircraft := aircraftMap[flightData.AircraftType]
	if aircraft == nil {
		return nil, false, fmt.Errorf("aircraft %s not found for flight %s-%s", flightData.AircraftType, flightData.Origin, flightData.Destination)
	}

	departureDate, err := models.ParseDate(flightData.DepartureDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid departure_date: %w", err)
	}
	departureTime, err := models.ParseTimeOfDay(flightData.DepartureTime)
	if err != nil {
		return nil, false, fmt.Errorf("invalid departure_time: %w", err)
	}
	arrivalDate, err := models.ParseDate(flightData.ArrivalDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid arrival_date: %w", err)
	}
	arrivalTime, err := models.ParseTimeOfDay(flightData.ArrivalTime)
	if err != nil {
		return nil, false, fmt.Errorf("invalid arrival_time: %w", err)
	}

	var flight models.Flight
	if err := db.Where("aircraft_id = ? AND origin = ? AND destination = ? AND departure_date = ? AND departure_time = ?",
		aircraft.ID, flightData.Origin, flightData.Destination, departureDate, departureTime).First(&flight).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			flight = models.Flight{
				AircraftID:      aircraft.ID,
				Origin:          flightData.Origin,
				Destination:     flightData.Destination,
				Route:           flightData.Route,
				OriginTerminal:  flightData.OriginTerminal,
				ArrivalTerminal: flightData.ArrivalTerminal,
				DepartureGate:   flightData.DepartureGate,
				ArrivalGate:     flightData.ArrivalGate,
				DepartureDate:   departureDate,
				DepartureTime:   departureTime,
				ArrivalDate:     arrivalDate,
				ArrivalTime:     arrivalTime,
			}

			if err := db.Create(&flight).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create flight: %w", err)
			}
			return &flight, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query flight: %w", err)
		}
	}

	return &flight, false, nil // created = false (existing)
}

func createAssignment(db *gorm.DB, assignmentData AssignmentData, flightMap map[string]*models.Flight, pilotMap map[string]*models.Pilot) (*models.FlightPilot, bool, error) {
	flight := flightMap[flightKey(assignmentData.Origin, assignmentData.Destination, assignmentData.DepartureDate, assignmentData.DepartureTime)]
	if flight == nil {
		return nil, false, fmt.Errorf("flight %s-%s on %s not found", assignmentData.Origin, assignmentData.Destination, assignmentData.DepartureDate)
	}

	pilot := pilotMap[pilotKey(assignmentData.PilotFirstName, assignmentData.PilotLastName)]
	if pilot == nil {
		return nil, false, fmt.Errorf("pilot %s %s not found", assignmentData.PilotFirstName, assignmentData.PilotLastName)
	}

	var assignment models.FlightPilot
	if err := db.Where("flight_id = ? AND pilot_id = ?", flight.ID, pilot.ID).First(&assignment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			assignment = models.FlightPilot{
				FlightID:   flight.ID,
				PilotID:    pilot.ID,
				AssignedAt: time.Now(),
			}

			if err := db.Create(&assignment).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create assignment: %w", err)
			}
			return &assignment, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query assignment: %w", err)
		}
	}

	return &assignment, false, nil // created = false (existing)
}

// pilotKey identifies a pilot within the seed data by full name.
func pilotKey(firstName, lastName string) string {
	return firstName + " " + lastName
}

// flightKey identifies a flight within the seed data. Two seeded flights may
// share a route as long as they depart at different times.
func flightKey(origin, destination, departureDate, departureTime string) string {
	return fmt.Sprintf("%s|%s|%s|%s", origin, destination, departureDate, departureTime)
}
