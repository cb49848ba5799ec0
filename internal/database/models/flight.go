package models

// Flight represents a scheduled flight operated by a single aircraft
type Flight struct {
	BaseModel
	AircraftID      uint      `json:"aircraft_id" gorm:"not null;index" validate:"required"`
	Origin          string    `json:"origin" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Destination     string    `json:"destination" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	Route           string    `json:"route" gorm:"size:200" validate:"max=200"`
	OriginTerminal  string    `json:"origin_terminal" gorm:"size:50" validate:"max=50"`
	ArrivalTerminal string    `json:"arrival_terminal" gorm:"size:50" validate:"max=50"`
	DepartureGate   string    `json:"departure_gate" gorm:"size:50" validate:"max=50"`
	ArrivalGate     string    `json:"arrival_gate" gorm:"size:50" validate:"max=50"`
	DepartureDate   Date      `json:"departure_date" gorm:"type:date;not null" validate:"required"`
	DepartureTime   TimeOfDay `json:"departure_time" gorm:"type:time;not null" validate:"required"`
	ArrivalDate     Date      `json:"arrival_date" gorm:"type:date;not null" validate:"required"`
	ArrivalTime     TimeOfDay `json:"arrival_time" gorm:"type:time;not null" validate:"required"`

	// Relationships
	FlightPilots []FlightPilot `json:"flight_pilots,omitempty" gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Flight
func (Flight) TableName() string {
	return "flights"
}
