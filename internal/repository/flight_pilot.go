package repository

import (
	"flight-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// FlightPilotRepository handles database operations for pilot assignments
type FlightPilotRepository struct {
	db *gorm.DB
}

// NewFlightPilotRepository creates a new flight pilot repository
func NewFlightPilotRepository(db *gorm.DB) *FlightPilotRepository {
	return &FlightPilotRepository{db: db}
}

// Create creates a new pilot assignment
func (r *FlightPilotRepository) Create(assignment *models.FlightPilot) error {
	return r.db.Create(assignment).Error
}

// GetByFlightID retrieves all assignments for a flight, ordered by ID
func (r *FlightPilotRepository) GetByFlightID(flightID uint) ([]models.FlightPilot, error) {
	var assignments []models.FlightPilot
	err := r.db.Where("flight_id = ?", flightID).Order("id").Find(&assignments).Error
	return assignments, err
}

// GetByPilotID retrieves all assignments for a pilot, ordered by ID
func (r *FlightPilotRepository) GetByPilotID(pilotID uint) ([]models.FlightPilot, error) {
	var assignments []models.FlightPilot
	err := r.db.Where("pilot_id = ?", pilotID).Order("id").Find(&assignments).Error
	return assignments, err
}

// GetPilotsByFlightID retrieves the pilots assigned to a flight, ordered by pilot ID
func (r *FlightPilotRepository) GetPilotsByFlightID(flightID uint) ([]models.Pilot, error) {
	var pilots []models.Pilot
	err := r.db.Model(&models.Pilot{}).
		Joins("JOIN flight_pilots ON flight_pilots.pilot_id = pilots.id").
		Where("flight_pilots.flight_id = ?", flightID).
		Order("pilots.id").
		Find(&pilots).Error
	return pilots, err
}

// GetFlightsByPilotID retrieves the flights a pilot is assigned to, ordered by flight ID
func (r *FlightPilotRepository) GetFlightsByPilotID(pilotID uint) ([]models.Flight, error) {
	var flights []models.Flight
	err := r.db.Model(&models.Flight{}).
		Joins("JOIN flight_pilots ON flight_pilots.flight_id = flights.id").
		Where("flight_pilots.pilot_id = ?", pilotID).
		Order("flights.id").
		Find(&flights).Error
	return flights, err
}

// Delete removes a pilot assignment
func (r *FlightPilotRepository) Delete(flightID, pilotID uint) error {
	return r.db.Where("flight_id = ? AND pilot_id = ?", flightID, pilotID).Delete(&models.FlightPilot{}).Error
}

// Exists checks if a pilot assignment exists
func (r *FlightPilotRepository) Exists(flightID, pilotID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FlightPilot{}).Where("flight_id = ? AND pilot_id = ?", flightID, pilotID).Count(&count).Error
	return count > 0, err
}
