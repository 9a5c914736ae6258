package repositories

import (
	"context"
	"fmt"

	"flightline/opsdeck/internal/constants"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// AircraftRepository handles fleet table operations using GORM
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// GetByID retrieves an aircraft by its ID. Returns (nil, nil) when the
// record does not exist.
func (r *AircraftRepository) GetByID(ctx context.Context, id string) (*gormModels.Aircraft, error) {
	var ac gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ac).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &ac, nil
}

// GetByRegistration retrieves an aircraft by its tail registration
func (r *AircraftRepository) GetByRegistration(ctx context.Context, registration string) (*gormModels.Aircraft, error) {
	var ac gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("registration = ?", registration).
		First(&ac).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &ac, nil
}

// List retrieves the fleet, optionally filtered by lifecycle status,
// ordered by registration.
func (r *AircraftRepository) List(ctx context.Context, status constants.AircraftStatus) ([]gormModels.Aircraft, error) {
	var fleet []gormModels.Aircraft

	q := r.db.WithContext(ctx).Order("registration ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Find(&fleet).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch fleet: %w", err)
	}

	return fleet, nil
}

// CountByStatus returns the number of aircraft in the given lifecycle state
func (r *AircraftRepository) CountByStatus(ctx context.Context, status constants.AircraftStatus) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count aircraft: %w", err)
	}

	return count, nil
}

// Create inserts a new aircraft
func (r *AircraftRepository) Create(ctx context.Context, ac *gormModels.Aircraft) error {
	if err := r.db.WithContext(ctx).Create(ac).Error; err != nil {
		return fmt.Errorf("failed to create aircraft: %w", err)
	}
	return nil
}

// Update persists changes to an existing aircraft
func (r *AircraftRepository) Update(ctx context.Context, ac *gormModels.Aircraft) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("id = ?", ac.ID).
		Updates(map[string]interface{}{
			"registration": ac.Registration,
			"type":         ac.Type,
			"status":       ac.Status,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update aircraft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("aircraft not found with ID: %s", ac.ID)
	}
	return nil
}

// Delete removes an aircraft from the fleet
func (r *AircraftRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Aircraft{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete aircraft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("aircraft not found with ID: %s", id)
	}
	return nil
}
