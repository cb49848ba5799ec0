package models

// Pilot represents a pilot who can be assigned to flights
type Pilot struct {
	BaseModel
	FirstName   string `json:"first_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	DateOfBirth Date   `json:"date_of_birth" gorm:"type:date;not null" validate:"required"`

	// Relationships
	FlightPilots []FlightPilot `json:"flight_pilots,omitempty" gorm:"foreignKey:PilotID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Pilot
func (Pilot) TableName() string {
	return "pilots"
}
