package repository

import (
	"flight-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// AircraftRepository handles database operations for aircrafts
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Create creates a new aircraft
func (r *AircraftRepository) Create(aircraft *models.Aircraft) error {
	return r.db.Create(aircraft).Error
}

// GetByID retrieves an aircraft by ID
func (r *AircraftRepository) GetByID(id uint) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetAll retrieves all aircrafts with pagination, ordered by ID
func (r *AircraftRepository) GetAll(limit, offset int) ([]models.Aircraft, int64, error) {
	var aircrafts []models.Aircraft
	var total int64

	// Get total count
	if err := r.db.Model(&models.Aircraft{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&aircrafts).Error
	if err != nil {
		return nil, 0, err
	}

	return aircrafts, total, nil
}

// Update updates an aircraft
func (r *AircraftRepository) Update(aircraft *models.Aircraft) error {
	return r.db.Save(aircraft).Error
}

// Delete deletes an aircraft. Flights operated by the aircraft and their
// pilot assignments are removed by the ON DELETE CASCADE constraints.
func (r *AircraftRepository) Delete(id uint) error {
	return r.db.Delete(&models.Aircraft{}, "id = ?", id).Error
}

// Exists checks if an aircraft exists by ID
func (r *AircraftRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Aircraft{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
