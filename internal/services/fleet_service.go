package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightline/opsdeck/internal/common"
	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"

	"github.com/google/uuid"
)

var (
	ErrAircraftNotFound      = errors.New("aircraft not found")
	ErrDuplicateRegistration = errors.New("registration already in fleet")
	ErrInvalidAircraftStatus = errors.New("invalid aircraft status")
)

// FleetService owns aircraft lifecycle: created by planner/controller/admin,
// mutated on edit, deleted only by admin (the role tiers are enforced by the
// route middleware, not here).
type FleetService struct {
	repo  *repositories.AircraftRepository
	cache common.Cache
}

func NewFleetService(repo *repositories.AircraftRepository, cache common.Cache) *FleetService {
	return &FleetService{
		repo:  repo,
		cache: cache,
	}
}

// List returns the fleet, optionally filtered by status. Unfiltered
// listings are cached briefly since the timeline view requests them on
// every render.
func (svc *FleetService) List(ctx context.Context, status constants.AircraftStatus) ([]gormModels.Aircraft, error) {
	if status != "" {
		if !status.Valid() {
			return nil, ErrInvalidAircraftStatus
		}
		return svc.repo.List(ctx, status)
	}

	key := string(constants.CachePrefixFleetList) + "all"
	if fleet, ok := common.GetTyped[[]gormModels.Aircraft](svc.cache, key); ok {
		return fleet, nil
	}

	fleet, err := svc.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	svc.cache.Set(key, fleet, 30*time.Second)
	return fleet, nil
}

// Get fetches one aircraft by ID
func (svc *FleetService) Get(ctx context.Context, id string) (*gormModels.Aircraft, error) {
	ac, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ac == nil {
		return nil, ErrAircraftNotFound
	}
	return ac, nil
}

// Create registers a new aircraft in the fleet
func (svc *FleetService) Create(ctx context.Context, req dtos.AircraftRequest) (*gormModels.Aircraft, error) {
	status := constants.AircraftActive
	if req.Status != "" {
		status = constants.AircraftStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidAircraftStatus
		}
	}

	existing, err := svc.repo.GetByRegistration(ctx, req.Registration)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRegistration
	}

	ac := &gormModels.Aircraft{
		ID:           uuid.New().String(),
		Registration: req.Registration,
		Type:         req.Type,
		Status:       status,
	}

	if err := svc.repo.Create(ctx, ac); err != nil {
		return nil, err
	}

	svc.invalidateList()
	return ac, nil
}

// Update mutates an existing aircraft
func (svc *FleetService) Update(ctx context.Context, id string, req dtos.AircraftRequest) (*gormModels.Aircraft, error) {
	ac, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Registration != "" && req.Registration != ac.Registration {
		existing, err := svc.repo.GetByRegistration(ctx, req.Registration)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateRegistration
		}
		ac.Registration = req.Registration
	}
	if req.Type != "" {
		ac.Type = req.Type
	}
	if req.Status != "" {
		status := constants.AircraftStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidAircraftStatus
		}
		ac.Status = status
	}

	if err := svc.repo.Update(ctx, ac); err != nil {
		return nil, fmt.Errorf("failed to update aircraft %s: %w", id, err)
	}

	svc.invalidateList()
	return ac, nil
}

// Delete removes an aircraft from the fleet
func (svc *FleetService) Delete(ctx context.Context, id string) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		return err
	}

	svc.invalidateList()
	return nil
}

func (svc *FleetService) invalidateList() {
	svc.cache.Delete(string(constants.CachePrefixFleetList) + "all")
}
