package models

// Aircraft represents an aircraft available for scheduling
type Aircraft struct {
	BaseModel
	Type string `json:"type" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Flights []Flight `json:"flights,omitempty" gorm:"foreignKey:AircraftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Aircraft
func (Aircraft) TableName() string {
	return "aircrafts"
}
