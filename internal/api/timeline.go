package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/services"
	"flightline/opsdeck/internal/timeline"
)

const dateLayout = "2006-01-02"

// TimelineHandler handles GET /api/v1/timeline?from=YYYY-MM-DD&to=YYYY-MM-DD&chunk_hours=N
//
// from defaults to today (UTC), to defaults to from, chunk_hours defaults
// to 24. An inverted range is normalized rather than rejected; a bad
// chunk_hours is a 400.
func TimelineHandler(timelineSvc *services.TimelineService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()

		from := now
		if qs := r.URL.Query().Get("from"); qs != "" {
			t, err := time.Parse(dateLayout, qs)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid 'from' date, want YYYY-MM-DD")
				return
			}
			from = t
		}

		to := from
		if qs := r.URL.Query().Get("to"); qs != "" {
			t, err := time.Parse(dateLayout, qs)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid 'to' date, want YYYY-MM-DD")
				return
			}
			to = t
		}

		chunkHours := timeline.ChunkFullDay
		if qs := r.URL.Query().Get("chunk_hours"); qs != "" {
			n, err := strconv.Atoi(qs)
			if err != nil || !timeline.ValidChunkHours(n) {
				respondWithError(w, http.StatusBadRequest, constants.ErrMsgInvalidChunkHours)
				return
			}
			chunkHours = n
		}

		doc, err := timelineSvc.BuildDocument(r.Context(), from, to, chunkHours)
		if err != nil {
			if errors.Is(err, services.ErrInvalidChunkHours) {
				respondWithError(w, http.StatusBadRequest, constants.ErrMsgInvalidChunkHours)
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to build timeline")
			return
		}

		respondWithSuccess(w, http.StatusOK, doc)
	}
}
