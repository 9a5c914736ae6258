package repositories

import (
	"context"
	"testing"
	"time"

	"flightline/opsdeck/internal/constants"
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

	// The models must migrate on sqlite as well as postgres; a tag that
	// only postgres understands breaks every suite that uses this setup.
	if err := db.AutoMigrate(&gormModels.Aircraft{}, &gormModels.FlightRoute{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestAircraftRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAircraftRepository(db)
	ctx := context.Background()

	ac := &gormModels.Aircraft{
		ID:           "ac-1",
		Registration: "N100AB",
		Type:         "A320",
		Status:       constants.AircraftMaintenance,
	}
	require.NoError(t, repo.Create(ctx, ac))

	// The status enum survives the Scan/Value round trip.
	fetched, err := repo.GetByID(ctx, "ac-1")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, constants.AircraftMaintenance, fetched.Status)

	byRegn, err := repo.GetByRegistration(ctx, "N100AB")
	require.NoError(t, err)
	require.NotNil(t, byRegn)
	assert.Equal(t, "ac-1", byRegn.ID)

	// Missing records come back (nil, nil), not an error.
	missing, err := repo.GetByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAircraftRepositoryListAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAircraftRepository(db)
	ctx := context.Background()

	mk := func(id, regn string, status constants.AircraftStatus) {
		require.NoError(t, repo.Create(ctx, &gormModels.Aircraft{
			ID:           id,
			Registration: regn,
			Type:         "B738",
			Status:       status,
		}))
	}
	mk("ac-1", "N300EF", constants.AircraftActive)
	mk("ac-2", "N100AB", constants.AircraftActive)
	mk("ac-3", "N200CD", constants.AircraftInactive)

	active, err := repo.List(ctx, constants.AircraftActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Registration-ordered
	assert.Equal(t, "N100AB", active[0].Registration)
	assert.Equal(t, "N300EF", active[1].Registration)

	count, err := repo.CountByStatus(ctx, constants.AircraftActive)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRouteRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRouteRepository(db)
	ctx := context.Background()

	dep := time.Date(2025, 4, 1, 6, 0, 0, 0, time.UTC)
	route := &gormModels.FlightRoute{
		ID:            "rt-1",
		FlightNumber:  "OD301",
		AircraftID:    "ac-1",
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(7 * time.Hour),
		Status:        constants.RouteDelayed,
	}
	require.NoError(t, repo.Create(ctx, route))

	fetched, err := repo.GetByID(ctx, "rt-1")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, constants.RouteDelayed, fetched.Status)
	assert.True(t, fetched.DepartureTime.Equal(dep))

	count, err := repo.CountByStatus(ctx, constants.RouteDelayed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRouteRepositoryListFiltersOnDeparture(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRouteRepository(db)
	ctx := context.Background()

	mk := func(id string, dep time.Time) {
		require.NoError(t, repo.Create(ctx, &gormModels.FlightRoute{
			ID:            id,
			FlightNumber:  "OD" + id,
			AircraftID:    "ac-1",
			Origin:        "KJFK",
			Destination:   "EGLL",
			DepartureTime: dep,
			ArrivalTime:   dep.Add(2 * time.Hour),
			Status:        constants.RouteScheduled,
		}))
	}
	mk("r1", time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC))
	mk("r2", time.Date(2025, 4, 1, 6, 0, 0, 0, time.UTC))
	mk("r3", time.Date(2025, 4, 5, 6, 0, 0, 0, time.UTC))

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	routes, err := repo.List(ctx, RouteFilter{From: &from, To: &to})
	require.NoError(t, err)

	require.Len(t, routes, 2)
	// Departure-ordered regardless of insert order.
	assert.Equal(t, "r2", routes[0].ID)
	assert.Equal(t, "r1", routes[1].ID)
}
