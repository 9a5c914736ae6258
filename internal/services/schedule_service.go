package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"github.com/google/uuid"
)

var (
	ErrRouteNotFound      = errors.New("flight route not found")
	ErrArrivalBeforeDep   = errors.New("arrival must be strictly after departure")
	ErrInvalidRouteStatus = errors.New("invalid route status")
	ErrUnknownAircraft    = errors.New("aircraft does not exist")
)

// ScheduleService owns flight route lifecycle and enforces the
// arrival-after-departure invariant before anything is persisted.
type ScheduleService struct {
	routes   *repositories.RouteRepository
	aircraft *repositories.AircraftRepository
}

func NewScheduleService(routes *repositories.RouteRepository, aircraft *repositories.AircraftRepository) *ScheduleService {
	return &ScheduleService{
		routes:   routes,
		aircraft: aircraft,
	}
}

// List returns routes matching the filter, departure-ordered.
func (svc *ScheduleService) List(ctx context.Context, f repositories.RouteFilter) ([]gormModels.FlightRoute, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidRouteStatus
	}
	return svc.routes.List(ctx, f)
}

// Get fetches one route by ID
func (svc *ScheduleService) Get(ctx context.Context, id string) (*gormModels.FlightRoute, error) {
	route, err := svc.routes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFound
	}
	return route, nil
}

// Create schedules a new flight route
func (svc *ScheduleService) Create(ctx context.Context, req dtos.RouteRequest) (*gormModels.FlightRoute, error) {
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, ErrArrivalBeforeDep
	}

	status := constants.RouteScheduled
	if req.Status != "" {
		status = constants.RouteStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidRouteStatus
		}
	}

	ac, err := svc.aircraft.GetByID(ctx, req.AircraftID)
	if err != nil {
		return nil, err
	}
	if ac == nil {
		return nil, ErrUnknownAircraft
	}

	route := &gormModels.FlightRoute{
		ID:            uuid.New().String(),
		FlightNumber:  req.FlightNumber,
		AircraftID:    req.AircraftID,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime.UTC(),
		ArrivalTime:   req.ArrivalTime.UTC(),
		Status:        status,
	}

	if err := svc.routes.Create(ctx, route); err != nil {
		return nil, err
	}

	return route, nil
}

// Update mutates an existing route, re-checking the time invariant against
// the merged record.
func (svc *ScheduleService) Update(ctx context.Context, id string, req dtos.RouteRequest) (*gormModels.FlightRoute, error) {
	route, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FlightNumber != "" {
		route.FlightNumber = req.FlightNumber
	}
	if req.AircraftID != "" && req.AircraftID != route.AircraftID {
		ac, err := svc.aircraft.GetByID(ctx, req.AircraftID)
		if err != nil {
			return nil, err
		}
		if ac == nil {
			return nil, ErrUnknownAircraft
		}
		route.AircraftID = req.AircraftID
	}
	if req.Origin != "" {
		route.Origin = req.Origin
	}
	if req.Destination != "" {
		route.Destination = req.Destination
	}
	if !req.DepartureTime.IsZero() {
		route.DepartureTime = req.DepartureTime.UTC()
	}
	if !req.ArrivalTime.IsZero() {
		route.ArrivalTime = req.ArrivalTime.UTC()
	}
	if req.Status != "" {
		status := constants.RouteStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidRouteStatus
		}
		route.Status = status
	}

	if !route.ArrivalTime.After(route.DepartureTime) {
		return nil, ErrArrivalBeforeDep
	}

	if err := svc.routes.Update(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to update route %s: %w", id, err)
	}

	return route, nil
}

// Delete removes a route from the schedule
func (svc *ScheduleService) Delete(ctx context.Context, id string) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}
	return svc.routes.Delete(ctx, id)
}

// InWindow returns the routes whose departure instant falls inside
// [dayStart, dayEnd], the relevance rule of the timeline.
func (svc *ScheduleService) InWindow(ctx context.Context, dayStart, dayEnd time.Time) ([]gormModels.FlightRoute, error) {
	return svc.routes.List(ctx, repositories.RouteFilter{
		From: &dayStart,
		To:   &dayEnd,
	})
}
