package dtos

import "time"

// AircraftRequest is the payload for creating or updating a fleet aircraft.
type AircraftRequest struct {
	Registration string `json:"registration"`
	Type         string `json:"type"`
	Status       string `json:"status,omitempty"`
}

// RouteRequest is the payload for creating or updating a flight route.
type RouteRequest struct {
	FlightNumber  string    `json:"flight_number"`
	AircraftID    string    `json:"aircraft_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status,omitempty"`
}
