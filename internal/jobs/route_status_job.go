package jobs

import (
	"context"
	"sync"
	"time"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/logging"
	"flightline/opsdeck/internal/metrics"
	"flightline/opsdeck/internal/models/dtos"
)

const routeStatusJobName = "route_status_roll"

// RouteStatusJob advances flight route lifecycle states by clock:
// scheduled routes become in_flight once their departure passes, in_flight
// routes become completed once their arrival passes. Cancelled and delayed
// routes are left alone.
type RouteStatusJob struct {
	routes     *repositories.RouteRepository
	aircraft   *repositories.AircraftRepository
	metricsReg *metrics.MetricsRegistry

	mu          sync.Mutex
	lastRunAt   *time.Time
	lastError   string
	runCount    int64
	transitions int64
}

// NewRouteStatusJob creates a new route status roll job instance
func NewRouteStatusJob(routes *repositories.RouteRepository, aircraft *repositories.AircraftRepository, metricsReg *metrics.MetricsRegistry) *RouteStatusJob {
	return &RouteStatusJob{
		routes:     routes,
		aircraft:   aircraft,
		metricsReg: metricsReg,
	}
}

// Run executes one roll pass and returns the number of transitions applied
func (j *RouteStatusJob) Run(ctx context.Context) (int64, error) {
	start := time.Now()

	transitions, err := j.routes.RollStatuses(ctx, start.UTC())

	j.mu.Lock()
	now := time.Now()
	j.lastRunAt = &now
	j.runCount++
	if err != nil {
		j.lastError = err.Error()
	} else {
		j.lastError = ""
		j.transitions += transitions
	}
	j.mu.Unlock()

	if err != nil {
		logging.Error("Route status roll failed", "error", err.Error())
		return 0, err
	}

	if transitions > 0 {
		j.metricsReg.StatusTransitionsTotal.WithLabelValues(routeStatusJobName).Add(float64(transitions))
	}

	j.updateGauges(ctx)

	logging.Info("Route status roll completed",
		"transitions", transitions,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return transitions, nil
}

// updateGauges refreshes the scheduled-route and active-aircraft gauges.
// The roll pass is the natural refresh point since it is the only writer
// that changes route status outside the API.
func (j *RouteStatusJob) updateGauges(ctx context.Context) {
	if scheduled, err := j.routes.CountByStatus(ctx, constants.RouteScheduled); err == nil {
		j.metricsReg.RoutesScheduled.Set(float64(scheduled))
	} else {
		logging.Warn("Failed to count scheduled routes", "error", err.Error())
	}

	if active, err := j.aircraft.CountByStatus(ctx, constants.AircraftActive); err == nil {
		j.metricsReg.AircraftActive.Set(float64(active))
	} else {
		logging.Warn("Failed to count active aircraft", "error", err.Error())
	}
}

// RunScheduled runs the job on a fixed interval until the context is
// cancelled.
func (j *RouteStatusJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logging.Info("Route status roll scheduled", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			logging.Info("Route status roll stopped")
			return
		case <-ticker.C:
			if _, err := j.Run(ctx); err != nil {
				// Logged in Run; keep the schedule alive
				continue
			}
		}
	}
}

// Status reports the job's bookkeeping for the admin endpoint
func (j *RouteStatusJob) Status() dtos.JobStatusDto {
	j.mu.Lock()
	defer j.mu.Unlock()

	return dtos.JobStatusDto{
		JobName:     routeStatusJobName,
		LastRunAt:   j.lastRunAt,
		LastError:   j.lastError,
		RunCount:    j.runCount,
		Transitions: j.transitions,
	}
}
