package gorm

import (
	"flightline/opsdeck/internal/constants"
	"time"
)

// FlightRoute rows carry no column defaults; the service layer mints the
// uuid and sets the status so the same DDL migrates on postgres and on
// the sqlite test driver.
type FlightRoute struct {
	ID            string                `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FlightNumber  string                `gorm:"column:flight_number;not null;index" json:"flight_number"`
	AircraftID    string                `gorm:"column:aircraft_id;type:uuid;not null;index" json:"aircraft_id"`
	Origin        string                `gorm:"column:origin;type:varchar(4);not null" json:"origin"`
	Destination   string                `gorm:"column:destination;type:varchar(4);not null" json:"destination"`
	DepartureTime time.Time             `gorm:"column:departure_time;not null;index" json:"departure_time"`
	ArrivalTime   time.Time             `gorm:"column:arrival_time;not null" json:"arrival_time"`
	Status        constants.RouteStatus `gorm:"column:status;not null" json:"status"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Aircraft Aircraft `gorm:"foreignKey:AircraftID" json:"-"`
}

// TableName specifies the table name for GORM
func (FlightRoute) TableName() string {
	return "flight_routes"
}
