package gorm

import (
	"flightline/opsdeck/internal/constants"
	"time"
)

// Aircraft rows carry no column defaults; the service layer mints the
// uuid and sets the status so the same DDL migrates on postgres and on
// the sqlite test driver.
type Aircraft struct {
	ID           string                   `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Registration string                   `gorm:"column:registration;uniqueIndex;not null" json:"registration"`
	Type         string                   `gorm:"column:type;not null" json:"type"`
	Status       constants.AircraftStatus `gorm:"column:status;not null" json:"status"`
	CreatedAt    time.Time                `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	FlightRoutes []FlightRoute `gorm:"foreignKey:AircraftID" json:"-"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
