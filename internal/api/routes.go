package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"
	"flightline/opsdeck/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListRoutesHandler handles GET /api/v1/routes with optional from/to/
// status/aircraft_id query filters. from and to are RFC 3339 instants
// bounding the departure time.
func ListRoutesHandler(scheduleSvc *services.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter repositories.RouteFilter

		if qs := r.URL.Query().Get("from"); qs != "" {
			t, err := time.Parse(time.RFC3339, qs)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid 'from' timestamp")
				return
			}
			filter.From = &t
		}
		if qs := r.URL.Query().Get("to"); qs != "" {
			t, err := time.Parse(time.RFC3339, qs)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid 'to' timestamp")
				return
			}
			filter.To = &t
		}
		filter.Status = constants.RouteStatus(r.URL.Query().Get("status"))
		filter.AircraftID = r.URL.Query().Get("aircraft_id")

		routes, err := scheduleSvc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRouteStatus) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch routes")
			return
		}

		respondWithSuccess(w, http.StatusOK, &routes)
	}
}

// GetRouteHandler handles GET /api/v1/routes/{route_id}
func GetRouteHandler(scheduleSvc *services.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "route_id")

		route, err := scheduleSvc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrRouteNotFound) {
				respondWithError(w, http.StatusNotFound, constants.ErrMsgRouteNotFound)
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch route")
			return
		}

		respondWithSuccess(w, http.StatusOK, route)
	}
}

// CreateRouteHandler handles POST /api/v1/routes
func CreateRouteHandler(scheduleSvc *services.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.FlightNumber == "" || req.AircraftID == "" || req.Origin == "" || req.Destination == "" {
			respondWithError(w, http.StatusBadRequest, "flight_number, aircraft_id, origin and destination are required")
			return
		}
		if req.DepartureTime.IsZero() || req.ArrivalTime.IsZero() {
			respondWithError(w, http.StatusBadRequest, "departure_time and arrival_time are required")
			return
		}

		route, err := scheduleSvc.Create(r.Context(), req)
		if err != nil {
			writeRouteError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, route)
	}
}

// UpdateRouteHandler handles PUT /api/v1/routes/{route_id}
func UpdateRouteHandler(scheduleSvc *services.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "route_id")

		var req dtos.RouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		route, err := scheduleSvc.Update(r.Context(), id, req)
		if err != nil {
			writeRouteError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, route)
	}
}

// DeleteRouteHandler handles DELETE /api/v1/routes/{route_id} (admin tier)
func DeleteRouteHandler(scheduleSvc *services.ScheduleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "route_id")

		if err := scheduleSvc.Delete(r.Context(), id); err != nil {
			writeRouteError(w, err)
			return
		}

		respondWithSuccess[gormModels.FlightRoute](w, http.StatusOK, nil)
	}
}

func writeRouteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrRouteNotFound):
		respondWithError(w, http.StatusNotFound, constants.ErrMsgRouteNotFound)
	case errors.Is(err, services.ErrArrivalBeforeDep):
		respondWithError(w, http.StatusBadRequest, constants.ErrMsgArrivalBeforeDep)
	case errors.Is(err, services.ErrInvalidRouteStatus), errors.Is(err, services.ErrUnknownAircraft):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
