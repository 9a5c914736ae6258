package gorm

import (
	"flightline/opsdeck/internal/constants"
	"time"
)

type User struct {
	ID          string            `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Email       string            `gorm:"column:email;uniqueIndex;not null" json:"email"`
	DisplayName *string           `gorm:"column:display_name" json:"display_name,omitempty"`
	Role        constants.OpsRole `gorm:"column:role;not null" json:"role"`
	IsActive    bool              `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
