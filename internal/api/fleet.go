package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"
	"flightline/opsdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListFleetHandler handles GET /api/v1/fleet
func ListFleetHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := constants.AircraftStatus(r.URL.Query().Get("status"))

		fleet, err := fleetSvc.List(r.Context(), status)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAircraftStatus) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch fleet")
			return
		}

		respondWithSuccess(w, http.StatusOK, &fleet)
	}
}

// GetAircraftHandler handles GET /api/v1/fleet/{aircraft_id}
func GetAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "aircraft_id")

		ac, err := fleetSvc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrAircraftNotFound) {
				respondWithError(w, http.StatusNotFound, constants.ErrMsgAircraftNotFound)
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch aircraft")
			return
		}

		respondWithSuccess(w, http.StatusOK, ac)
	}
}

// CreateAircraftHandler handles POST /api/v1/fleet
func CreateAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Registration == "" || req.Type == "" {
			respondWithError(w, http.StatusBadRequest, "registration and type are required")
			return
		}

		ac, err := fleetSvc.Create(r.Context(), req)
		if err != nil {
			writeFleetError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, ac)
	}
}

// UpdateAircraftHandler handles PUT /api/v1/fleet/{aircraft_id}
func UpdateAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "aircraft_id")

		var req dtos.AircraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		ac, err := fleetSvc.Update(r.Context(), id, req)
		if err != nil {
			writeFleetError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, ac)
	}
}

// DeleteAircraftHandler handles DELETE /api/v1/fleet/{aircraft_id}.
// Reaching here requires the admin tier; the route group enforces it.
func DeleteAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "aircraft_id")

		if err := fleetSvc.Delete(r.Context(), id); err != nil {
			writeFleetError(w, err)
			return
		}

		respondWithSuccess[gormModels.Aircraft](w, http.StatusOK, nil)
	}
}

func writeFleetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAircraftNotFound):
		respondWithError(w, http.StatusNotFound, constants.ErrMsgAircraftNotFound)
	case errors.Is(err, services.ErrDuplicateRegistration):
		respondWithError(w, http.StatusConflict, constants.ErrMsgDuplicateTailRegn)
	case errors.Is(err, services.ErrInvalidAircraftStatus):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
