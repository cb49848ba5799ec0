package repository

import (
	"flight-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// PilotRepository handles database operations for pilots
type PilotRepository struct {
	db *gorm.DB
}

// NewPilotRepository creates a new pilot repository
func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// Create creates a new pilot
func (r *PilotRepository) Create(pilot *models.Pilot) error {
	return r.db.Create(pilot).Error
}

// GetByID retrieves a pilot by ID
func (r *PilotRepository) GetByID(id uint) (*models.Pilot, error) {
	var pilot models.Pilot
	err := r.db.First(&pilot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pilot, nil
}

// GetAll retrieves all pilots with pagination, ordered by ID
func (r *PilotRepository) GetAll(limit, offset int) ([]models.Pilot, int64, error) {
	var pilots []models.Pilot
	var total int64

	// Get total count
	if err := r.db.Model(&models.Pilot{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&pilots).Error
	if err != nil {
		return nil, 0, err
	}

	return pilots, total, nil
}

// Update updates a pilot
func (r *PilotRepository) Update(pilot *models.Pilot) error {
	return r.db.Save(pilot).Error
}

// Delete deletes a pilot. Assignments of the pilot are removed by the
// ON DELETE CASCADE constraint; flights themselves are unaffected.
func (r *PilotRepository) Delete(id uint) error {
	return r.db.Delete(&models.Pilot{}, "id = ?", id).Error
}

// Exists checks if a pilot exists by ID
func (r *PilotRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Pilot{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
