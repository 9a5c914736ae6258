package constants

import (
	"database/sql/driver"
	"fmt"
)

// AircraftStatus mirrors the Postgres ENUM 'aircraft_status'
type AircraftStatus string

const (
	AircraftActive      AircraftStatus = "active"
	AircraftMaintenance AircraftStatus = "maintenance"
	AircraftInactive    AircraftStatus = "inactive"
)

func (s AircraftStatus) String() string { return string(s) }

// Valid reports whether s is a known lifecycle state.
func (s AircraftStatus) Valid() bool {
	switch s {
	case AircraftActive, AircraftMaintenance, AircraftInactive:
		return true
	}
	return false
}

func (s *AircraftStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = AircraftStatus(v)
	case []byte:
		*s = AircraftStatus(v)
	default:
		return fmt.Errorf("AircraftStatus: cannot scan type %T", src)
	}
	return nil
}

func (s AircraftStatus) Value() (driver.Value, error) { return string(s), nil }

// RouteStatus mirrors the Postgres ENUM 'route_status'
type RouteStatus string

const (
	RouteScheduled RouteStatus = "scheduled"
	RouteInFlight  RouteStatus = "in_flight"
	RouteCompleted RouteStatus = "completed"
	RouteCancelled RouteStatus = "cancelled"
	RouteDelayed   RouteStatus = "delayed"
)

func (s RouteStatus) String() string { return string(s) }

func (s RouteStatus) Valid() bool {
	switch s {
	case RouteScheduled, RouteInFlight, RouteCompleted, RouteCancelled, RouteDelayed:
		return true
	}
	return false
}

func (s *RouteStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = RouteStatus(v)
	case []byte:
		*s = RouteStatus(v)
	default:
		return fmt.Errorf("RouteStatus: cannot scan type %T", src)
	}
	return nil
}

func (s RouteStatus) Value() (driver.Value, error) { return string(s), nil }
