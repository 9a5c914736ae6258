package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightline/opsdeck/internal/common"
	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/metrics"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"
	"flightline/opsdeck/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testMetrics = metrics.NewMetricsRegistry()

func setupTimelineHandler(t *testing.T) (http.HandlerFunc, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&gormModels.Aircraft{}, &gormModels.FlightRoute{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	cache := common.NewMemoryCache(time.Minute, 10*time.Minute)
	fleetSvc := services.NewFleetService(repositories.NewAircraftRepository(db), cache)
	scheduleSvc := services.NewScheduleService(
		repositories.NewRouteRepository(db),
		repositories.NewAircraftRepository(db),
	)
	timelineSvc := services.NewTimelineService(fleetSvc, scheduleSvc, cache, testMetrics)

	return TimelineHandler(timelineSvc), db
}

func TestTimelineHandler_Success(t *testing.T) {
	handler, db := setupTimelineHandler(t)

	ac := gormModels.Aircraft{
		ID:           "ac-1",
		Registration: "N100AB",
		Type:         "A320",
		Status:       constants.AircraftActive,
	}
	if err := db.Create(&ac).Error; err != nil {
		t.Fatalf("Failed to seed aircraft: %v", err)
	}

	dep := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
	route := gormModels.FlightRoute{
		ID:            "rt-1",
		FlightNumber:  "OD201",
		AircraftID:    ac.ID,
		Origin:        "KJFK",
		Destination:   "EGLL",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(7 * time.Hour),
		Status:        constants.RouteScheduled,
	}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("Failed to seed route: %v", err)
	}

	req := httptest.NewRequest("GET", "/timeline?from=2025-03-10&to=2025-03-11&chunk_hours=12", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp dtos.APIResponse[dtos.TimelineDocument]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	doc := resp.Data
	if doc.Window.NumChunks != 4 {
		t.Errorf("Expected 4 chunks, got %d", doc.Window.NumChunks)
	}
	if len(doc.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Registration != "N100AB" {
		t.Errorf("Expected registration N100AB, got %s", doc.Entries[0].Registration)
	}
	if !doc.Entries[0].Position.Visible {
		t.Error("Expected entry to be visible")
	}
	if len(doc.Labels) != 4 {
		t.Errorf("Expected 4 labels, got %d", len(doc.Labels))
	}
}

func TestTimelineHandler_DefaultsToToday(t *testing.T) {
	handler, _ := setupTimelineHandler(t)

	req := httptest.NewRequest("GET", "/timeline", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp dtos.APIResponse[dtos.TimelineDocument]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	today := time.Now().UTC()
	wantStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !resp.Data.Window.DayStart.Equal(wantStart) {
		t.Errorf("Expected window to start at %v, got %v", wantStart, resp.Data.Window.DayStart)
	}
	if resp.Data.Window.NumDays != 1 {
		t.Errorf("Expected a single-day window, got %d days", resp.Data.Window.NumDays)
	}
	if resp.Data.Window.ChunkHours != 24 {
		t.Errorf("Expected default 24h chunks, got %d", resp.Data.Window.ChunkHours)
	}
}

func TestTimelineHandler_BadDate(t *testing.T) {
	handler, _ := setupTimelineHandler(t)

	req := httptest.NewRequest("GET", "/timeline?from=10-03-2025", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestTimelineHandler_BadChunkHours(t *testing.T) {
	handler, _ := setupTimelineHandler(t)

	req := httptest.NewRequest("GET", "/timeline?chunk_hours=8", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
