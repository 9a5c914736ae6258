package api

import (
	"time"

	"flightline/opsdeck/internal/common"
	"flightline/opsdeck/internal/config"
	"flightline/opsdeck/internal/db"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/metrics"
	"flightline/opsdeck/internal/services"
)

type Repositories struct {
	Aircraft *repositories.AircraftRepository
	Route    *repositories.RouteRepository
	User     *repositories.UserRepository
	Keys     *repositories.KeysRepo
}

type Services struct {
	Cache     common.Cache
	Fleet     *services.FleetService
	Schedule  *services.ScheduleService
	Timeline  *services.TimelineService
	URLSigner *common.URLSignerService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services. Redis backs the cache
// and the signer's single-use ledger; the in-memory cache takes over when
// Redis is unreachable at startup.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Aircraft: repositories.NewAircraftRepository(db.PgDB),
		Route:    repositories.NewRouteRepository(db.PgDB),
		User:     repositories.NewUserRepository(db.DB),
		Keys:     repositories.NewApiKeysRepo(db.DB),
	}

	redisClient := common.NewRedisClient(cfg.Redis)

	// The in-memory backend serves timeline documents as typed structs;
	// the redis backend JSON round-trips them, which the services treat
	// as a cache miss. Pick redis only when instances must share the
	// fleet listing cache.
	var cacheSvc common.Cache
	if cfg.Cache.Backend == "redis" {
		cacheSvc = common.NewRedisCache(redisClient)
	} else {
		cacheSvc = common.NewMemoryCache(time.Minute, 10*time.Minute)
	}

	fleetSvc := services.NewFleetService(repos.Aircraft, cacheSvc)
	scheduleSvc := services.NewScheduleService(repos.Route, repos.Aircraft)
	timelineSvc := services.NewTimelineService(fleetSvc, scheduleSvc, cacheSvc, metricsReg)

	urlSigner := common.NewURLSignerService([]byte(cfg.SessionSecret), redisClient)

	svcs := &Services{
		Cache:     cacheSvc,
		Fleet:     fleetSvc,
		Schedule:  scheduleSvc,
		Timeline:  timelineSvc,
		URLSigner: urlSigner,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
