package dtos

import (
	"time"

	"flightline/opsdeck/internal/timeline"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// WindowDto describes the derived timeline window to the rendering layer.
type WindowDto struct {
	DayStart   time.Time `json:"day_start"`
	DayEnd     time.Time `json:"day_end"`
	NumDays    int       `json:"num_days"`
	TotalHours int       `json:"total_hours"`
	ChunkHours int       `json:"chunk_hours"`
	NumChunks  int       `json:"num_chunks"`
}

// TimelineEntry pairs one flight route with its computed bar geometry.
// Routes whose departure falls outside the window are omitted entirely.
type TimelineEntry struct {
	RouteID       string                 `json:"route_id"`
	FlightNumber  string                 `json:"flight_number"`
	AircraftID    string                 `json:"aircraft_id"`
	Registration  string                 `json:"registration"`
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	DepartureTime time.Time              `json:"departure_time"`
	ArrivalTime   time.Time              `json:"arrival_time"`
	RouteStatus   string                 `json:"route_status"`
	Position      timeline.EventPosition `json:"position"`
}

// TimelineDocument is the full payload of GET /api/v1/timeline: everything
// the client needs to draw one render of the schedule grid.
type TimelineDocument struct {
	Window     WindowDto             `json:"window"`
	Entries    []TimelineEntry       `json:"entries"`
	Labels     []timeline.ChunkLabel `json:"labels"`
	Separators []timeline.Separator  `json:"separators"`
}

// JobStatusDto reports a background job's last run to the admin endpoints.
type JobStatusDto struct {
	JobName     string     `json:"job_name"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	RunCount    int64      `json:"run_count"`
	Transitions int64      `json:"transitions"`
}

// DashboardLinkDto carries a presigned dashboard URL.
type DashboardLinkDto struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

// DashboardSessionDto is the identity a consumed dashboard token resolves to.
type DashboardSessionDto struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
