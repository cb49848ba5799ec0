package models

import (
	"time"
)

// FlightPilot represents the assignment of a pilot to a flight. A pilot can
// be assigned to a flight at most once, enforced by the composite unique
// index on (flight_id, pilot_id).
type FlightPilot struct {
	BaseModel
	FlightID   uint      `json:"flight_id" gorm:"not null;uniqueIndex:idx_flight_pilot_pair" validate:"required"`
	PilotID    uint      `json:"pilot_id" gorm:"not null;uniqueIndex:idx_flight_pilot_pair;index" validate:"required"`
	AssignedAt time.Time `json:"assigned_at" gorm:"not null"`
}

// TableName returns the table name for FlightPilot
func (FlightPilot) TableName() string {
	return "flight_pilots"
}
