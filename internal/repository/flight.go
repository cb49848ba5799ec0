package repository

import (
	"flight-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// FlightRepository handles database operations for flights
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create creates a new flight
func (r *FlightRepository) Create(flight *models.Flight) error {
	return r.db.Create(flight).Error
}

// GetByID retrieves a flight by ID
func (r *FlightRepository) GetByID(id uint) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.First(&flight, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

// GetAll retrieves all flights with pagination, ordered by ID
func (r *FlightRepository) GetAll(limit, offset int) ([]models.Flight, int64, error) {
	var flights []models.Flight
	var total int64

	// Get total count
	if err := r.db.Model(&models.Flight{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&flights).Error
	if err != nil {
		return nil, 0, err
	}

	return flights, total, nil
}

// GetByAircraftID retrieves all flights operated by an aircraft, ordered by ID
func (r *FlightRepository) GetByAircraftID(aircraftID uint) ([]models.Flight, error) {
	var flights []models.Flight
	err := r.db.Where("aircraft_id = ?", aircraftID).Order("id").Find(&flights).Error
	return flights, err
}

// Update updates a flight
func (r *FlightRepository) Update(flight *models.Flight) error {
	return r.db.Save(flight).Error
}

// Delete deletes a flight. Pilot assignments for the flight are removed by
// the ON DELETE CASCADE constraint.
func (r *FlightRepository) Delete(id uint) error {
	return r.db.Delete(&models.Flight{}, "id = ?", id).Error
}

// Exists checks if a flight exists by ID
func (r *FlightRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Flight{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
