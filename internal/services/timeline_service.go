package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightline/opsdeck/internal/common"
	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/logging"
	"flightline/opsdeck/internal/metrics"
	"flightline/opsdeck/internal/models/dtos"
	gormModels "flightline/opsdeck/internal/models/gorm"
	"flightline/opsdeck/internal/timeline"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidChunkHours = errors.New("chunk_hours must be 6, 12 or 24")

// TimelineService assembles the full timeline document for one render of
// the schedule grid: the derived window, one positioned entry per in-window
// route, and the chunk labels and separators.
type TimelineService struct {
	fleet      *FleetService
	schedule   *ScheduleService
	cache      common.Cache
	metricsReg *metrics.MetricsRegistry
}

func NewTimelineService(fleet *FleetService, schedule *ScheduleService, cache common.Cache, metricsReg *metrics.MetricsRegistry) *TimelineService {
	return &TimelineService{
		fleet:      fleet,
		schedule:   schedule,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

// BuildDocument computes the timeline for the inclusive date range
// [start, end] at the given chunk granularity. An inverted range is
// clamped before the window is derived. The assembled document is cached
// briefly keyed on the normalized inputs.
func (svc *TimelineService) BuildDocument(ctx context.Context, start, end time.Time, chunkHours int) (*dtos.TimelineDocument, error) {
	if !timeline.ValidChunkHours(chunkHours) {
		return nil, ErrInvalidChunkHours
	}

	start, end = timeline.ClampRange(start, end)
	w := timeline.NewWindow(start, end, chunkHours)

	key := fmt.Sprintf("%s%s_%s_%d",
		constants.CachePrefixTimelineDoc,
		w.DayStart.Format("20060102"),
		w.DayEnd.Format("20060102"),
		chunkHours,
	)

	if doc, ok := common.GetTyped[*dtos.TimelineDocument](svc.cache, key); ok {
		svc.metricsReg.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixTimelineDoc)).Inc()
		return doc, nil
	}
	svc.metricsReg.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixTimelineDoc)).Inc()

	buildStart := time.Now()

	// Fleet and in-window routes come from independent tables; fetch them
	// concurrently.
	var (
		fleet  []gormModels.Aircraft
		routes []gormModels.FlightRoute
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fleet, err = svc.fleet.List(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		routes, err = svc.schedule.InWindow(gctx, w.DayStart, w.DayEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load timeline data: %w", err)
	}

	registrations := make(map[string]string, len(fleet))
	for _, ac := range fleet {
		registrations[ac.ID] = ac.Registration
	}

	entries := make([]dtos.TimelineEntry, 0, len(routes))
	for _, route := range routes {
		pos := w.Position(route.DepartureTime, route.ArrivalTime)
		if !pos.Visible {
			// The repository window query already filters on departure;
			// this only trims boundary stragglers.
			continue
		}
		entries = append(entries, dtos.TimelineEntry{
			RouteID:       route.ID,
			FlightNumber:  route.FlightNumber,
			AircraftID:    route.AircraftID,
			Registration:  registrations[route.AircraftID],
			Origin:        route.Origin,
			Destination:   route.Destination,
			DepartureTime: route.DepartureTime,
			ArrivalTime:   route.ArrivalTime,
			RouteStatus:   route.Status.String(),
			Position:      pos,
		})
	}

	doc := &dtos.TimelineDocument{
		Window: dtos.WindowDto{
			DayStart:   w.DayStart,
			DayEnd:     w.DayEnd,
			NumDays:    w.NumDays,
			TotalHours: w.TotalHours,
			ChunkHours: w.ChunkHours,
			NumChunks:  w.NumChunks,
		},
		Entries:    entries,
		Labels:     w.Labels(),
		Separators: w.Separators(),
	}

	svc.metricsReg.TimelineBuildsTotal.Inc()
	svc.metricsReg.TimelineBuildDuration.Observe(time.Since(buildStart).Seconds())

	logging.Debug("Timeline document built",
		"day_start", w.DayStart.Format(time.RFC3339),
		"num_chunks", w.NumChunks,
		"entries", len(entries),
	)

	svc.cache.Set(key, doc, 15*time.Second)
	return doc, nil
}
