package jobs

import (
	"context"
	"time"

	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/metrics"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	routes *repositories.RouteRepository,
	aircraft *repositories.AircraftRepository,
	metricsReg *metrics.MetricsRegistry,
	statusRollInterval time.Duration,
) *RouteStatusJob {
	statusJob := NewRouteStatusJob(routes, aircraft, metricsReg)

	// Roll route statuses on a fixed cadence in the background
	go statusJob.RunScheduled(ctx, statusRollInterval)

	return statusJob
}
