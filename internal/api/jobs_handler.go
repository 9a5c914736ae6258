package api

import (
	"net/http"

	"flightline/opsdeck/internal/auth"
	"flightline/opsdeck/internal/jobs"
	"flightline/opsdeck/internal/logging"
	"flightline/opsdeck/internal/models/dtos"
)

// JobsHandler handles manual job triggering endpoints
type JobsHandler struct {
	statusJob *jobs.RouteStatusJob
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(statusJob *jobs.RouteStatusJob) *JobsHandler {
	return &JobsHandler{
		statusJob: statusJob,
	}
}

// TriggerStatusRoll manually runs the route status roll job
func (h *JobsHandler) TriggerStatusRoll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		logging.Info("Route status roll manually triggered", "user_id", claims.UserID())

		transitions, err := h.statusJob.Run(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to run status roll: "+err.Error())
			return
		}

		status := h.statusJob.Status()
		status.Transitions = transitions
		respondWithSuccess(w, http.StatusOK, &status)
	}
}

// GetJobStatus reports the roll job's last run
func (h *JobsHandler) GetJobStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := h.statusJob.Status()
		respondWithSuccess[dtos.JobStatusDto](w, http.StatusOK, &status)
	}
}
