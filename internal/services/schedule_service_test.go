package services

import (
	"context"
	"testing"
	"time"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&gormModels.Aircraft{}, &gormModels.FlightRoute{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedAircraft(t *testing.T, db *gorm.DB, registration string) *gormModels.Aircraft {
	t.Helper()
	ac := &gormModels.Aircraft{
		ID:           registration + "-id",
		Registration: registration,
		Type:         "A320",
		Status:       constants.AircraftActive,
	}
	require.NoError(t, db.Create(ac).Error)
	return ac
}

func newScheduleService(db *gorm.DB) *ScheduleService {
	return NewScheduleService(
		repositories.NewRouteRepository(db),
		repositories.NewAircraftRepository(db),
	)
}

func TestScheduleServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	ac := seedAircraft(t, db, "N100AB")
	svc := newScheduleService(db)
	ctx := context.Background()

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)

	route, err := svc.Create(ctx, dtos.RouteRequest{
		FlightNumber:  "OD101",
		AircraftID:    ac.ID,
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(7 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, route.ID)
	assert.Equal(t, constants.RouteScheduled, route.Status)

	fetched, err := svc.Get(ctx, route.ID)
	require.NoError(t, err)
	assert.Equal(t, "OD101", fetched.FlightNumber)
}

func TestScheduleServiceCreateRejectsArrivalBeforeDeparture(t *testing.T) {
	db := setupTestDB(t)
	ac := seedAircraft(t, db, "N100AB")
	svc := newScheduleService(db)

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		arrival time.Time
	}{
		{name: "arrival before departure", arrival: dep.Add(-time.Hour)},
		{name: "arrival equals departure", arrival: dep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), dtos.RouteRequest{
				FlightNumber:  "OD102",
				AircraftID:    ac.ID,
				Origin:        "KJFK",
				Destination:   "EGLL",
				DepartureTime: dep,
				ArrivalTime:   tt.arrival,
			})
			assert.ErrorIs(t, err, ErrArrivalBeforeDep)
		})
	}
}

func TestScheduleServiceCreateRejectsUnknownAircraft(t *testing.T) {
	db := setupTestDB(t)
	svc := newScheduleService(db)

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), dtos.RouteRequest{
		FlightNumber:  "OD103",
		AircraftID:    "no-such-aircraft",
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(time.Hour),
	})

	assert.ErrorIs(t, err, ErrUnknownAircraft)
}

func TestScheduleServiceUpdateRechecksInvariant(t *testing.T) {
	db := setupTestDB(t)
	ac := seedAircraft(t, db, "N100AB")
	svc := newScheduleService(db)
	ctx := context.Background()

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	route, err := svc.Create(ctx, dtos.RouteRequest{
		FlightNumber:  "OD104",
		AircraftID:    ac.ID,
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	// Pushing departure past the stored arrival must fail.
	_, err = svc.Update(ctx, route.ID, dtos.RouteRequest{
		DepartureTime: dep.Add(3 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrArrivalBeforeDep)

	// Moving both together is fine.
	updated, err := svc.Update(ctx, route.ID, dtos.RouteRequest{
		DepartureTime: dep.Add(3 * time.Hour),
		ArrivalTime:   dep.Add(5 * time.Hour),
		Status:        string(constants.RouteDelayed),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RouteDelayed, updated.Status)
}

func TestScheduleServiceInWindow(t *testing.T) {
	db := setupTestDB(t)
	ac := seedAircraft(t, db, "N100AB")
	svc := newScheduleService(db)
	ctx := context.Background()

	mk := func(fn string, dep time.Time) {
		_, err := svc.Create(ctx, dtos.RouteRequest{
			FlightNumber:  fn,
			AircraftID:    ac.ID,
			Origin:        "KJFK",
			Destination:   "EGLL",
			DepartureTime: dep,
			ArrivalTime:   dep.Add(2 * time.Hour),
		})
		require.NoError(t, err)
	}

	mk("IN1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	mk("IN2", time.Date(2025, 1, 2, 23, 0, 0, 0, time.UTC))
	mk("OUT1", time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)) // overlaps but departs before
	mk("OUT2", time.Date(2025, 1, 3, 1, 0, 0, 0, time.UTC))

	dayStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 1, 2, 23, 59, 59, 999_000_000, time.UTC)

	routes, err := svc.InWindow(ctx, dayStart, dayEnd)
	require.NoError(t, err)

	require.Len(t, routes, 2)
	// Departure-ordered
	assert.Equal(t, "IN1", routes[0].FlightNumber)
	assert.Equal(t, "IN2", routes[1].FlightNumber)
}

func TestScheduleServiceDelete(t *testing.T) {
	db := setupTestDB(t)
	ac := seedAircraft(t, db, "N100AB")
	svc := newScheduleService(db)
	ctx := context.Background()

	dep := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)
	route, err := svc.Create(ctx, dtos.RouteRequest{
		FlightNumber:  "OD105",
		AircraftID:    ac.ID,
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, route.ID))

	_, err = svc.Get(ctx, route.ID)
	assert.ErrorIs(t, err, ErrRouteNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, route.ID), ErrRouteNotFound)
}
