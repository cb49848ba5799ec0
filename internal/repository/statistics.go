package repository

import (
	"flight-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// DestinationCount is the aggregation row for the most common destination
type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

// AircraftTypeCount is the aggregation row for the most common aircraft type
type AircraftTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// StatisticsRepository handles aggregate queries over flights
type StatisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// CountFlights returns the total number of flights
func (r *StatisticsRepository) CountFlights() (int64, error) {
	var total int64
	err := r.db.Model(&models.Flight{}).Count(&total).Error
	return total, err
}

// MostCommonDestination returns the destination with the highest flight
// count. Ties are broken by taking the lexicographically smallest
// destination. Returns nil when there are no flights.
func (r *StatisticsRepository) MostCommonDestination() (*DestinationCount, error) {
	var row DestinationCount
	result := r.db.Raw(`
		SELECT destination, COUNT(*) AS count
		FROM flights
		GROUP BY destination
		ORDER BY count DESC, destination ASC
		LIMIT 1
	`).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// MostCommonAircraftType returns the aircraft type with the highest flight
// count. Ties are broken by taking the lexicographically smallest type.
// Returns nil when there are no flights.
func (r *StatisticsRepository) MostCommonAircraftType() (*AircraftTypeCount, error) {
	var row AircraftTypeCount
	result := r.db.Raw(`
		SELECT a.type AS type, COUNT(*) AS count
		FROM flights f
		JOIN aircrafts a ON f.aircraft_id = a.id
		GROUP BY a.type
		ORDER BY count DESC, a.type ASC
		LIMIT 1
	`).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
