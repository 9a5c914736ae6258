package repositories

import (
	"context"
	"fmt"
	"time"

	"flightline/opsdeck/internal/constants"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"gorm.io/gorm"
)

// RouteFilter narrows a flight route listing.
type RouteFilter struct {
	From       *time.Time
	To         *time.Time
	Status     constants.RouteStatus
	AircraftID string
}

// RouteRepository handles flight_routes table operations using GORM
type RouteRepository struct {
	db *gorm.DB
}

// NewRouteRepository creates a new GORM-based flight route repository
func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// GetByID retrieves a flight route by its ID. Returns (nil, nil) when the
// record does not exist.
func (r *RouteRepository) GetByID(ctx context.Context, id string) (*gormModels.FlightRoute, error) {
	var route gormModels.FlightRoute

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&route).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight route: %w", err)
	}

	return &route, nil
}

// List retrieves routes matching the filter, ordered by departure time.
// From/To bound the departure instant: the timeline considers a route
// relevant only when its departure falls inside the window.
func (r *RouteRepository) List(ctx context.Context, f RouteFilter) ([]gormModels.FlightRoute, error) {
	var routes []gormModels.FlightRoute

	q := r.db.WithContext(ctx).Order("departure_time ASC")
	if f.From != nil {
		q = q.Where("departure_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("departure_time <= ?", *f.To)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AircraftID != "" {
		q = q.Where("aircraft_id = ?", f.AircraftID)
	}

	if err := q.Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch flight routes: %w", err)
	}

	return routes, nil
}

// CountByStatus returns the number of routes in the given lifecycle state
func (r *RouteRepository) CountByStatus(ctx context.Context, status constants.RouteStatus) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.FlightRoute{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count flight routes: %w", err)
	}

	return count, nil
}

// Create inserts a new flight route
func (r *RouteRepository) Create(ctx context.Context, route *gormModels.FlightRoute) error {
	if err := r.db.WithContext(ctx).Create(route).Error; err != nil {
		return fmt.Errorf("failed to create flight route: %w", err)
	}
	return nil
}

// Update persists changes to an existing flight route
func (r *RouteRepository) Update(ctx context.Context, route *gormModels.FlightRoute) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.FlightRoute{}).
		Where("id = ?", route.ID).
		Updates(map[string]interface{}{
			"flight_number":  route.FlightNumber,
			"aircraft_id":    route.AircraftID,
			"origin":         route.Origin,
			"destination":    route.Destination,
			"departure_time": route.DepartureTime,
			"arrival_time":   route.ArrivalTime,
			"status":         route.Status,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update flight route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flight route not found with ID: %s", route.ID)
	}
	return nil
}

// Delete removes a flight route
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.FlightRoute{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete flight route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flight route not found with ID: %s", id)
	}
	return nil
}

// RollStatuses advances route lifecycle states by clock: scheduled routes
// whose departure has passed become in_flight, in_flight routes whose
// arrival has passed become completed. Cancelled and delayed routes are
// never touched. Returns the number of rows transitioned.
func (r *RouteRepository) RollStatuses(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	res := r.db.WithContext(ctx).
		Model(&gormModels.FlightRoute{}).
		Where("status = ? AND departure_time <= ?", constants.RouteScheduled, now).
		Update("status", constants.RouteInFlight)
	if res.Error != nil {
		return total, fmt.Errorf("failed to roll scheduled routes: %w", res.Error)
	}
	total += res.RowsAffected

	res = r.db.WithContext(ctx).
		Model(&gormModels.FlightRoute{}).
		Where("status = ? AND arrival_time <= ?", constants.RouteInFlight, now).
		Update("status", constants.RouteCompleted)
	if res.Error != nil {
		return total, fmt.Errorf("failed to roll in-flight routes: %w", res.Error)
	}
	total += res.RowsAffected

	return total, nil
}
