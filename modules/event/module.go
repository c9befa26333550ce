package event

import (
	"event-hub/core/cache"
	"event-hub/core/config"
	"event-hub/core/database"
	"event-hub/core/middleware"
	"event-hub/modules/event/controller"
	"event-hub/modules/event/repository"
	"event-hub/modules/event/router"
	"event-hub/modules/event/service"
	statsclient "event-hub/modules/stats/client"

	"github.com/labstack/echo/v4"
)

type Dependencies struct {
	Categories service.CategoryLookup
	Users      service.UserLookup
	Stats      statsclient.StatsClient
	Hits       statsclient.HitRecorder
	Cache      cache.Cache
	Config     *config.Config
}

// Init registers the event routes. It returns the event repository used by
// the request and comment modules and the public service whose summaries back
// compilations.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, deps Dependencies) (*repository.EventRepository, *service.PublicService) {
	events := repository.NewEventRepository(db)

	admin, private, public := service.NewEventServices(service.Dependencies{
		Events:     events,
		Locations:  repository.NewLocationRepository(db),
		Categories: deps.Categories,
		Users:      deps.Users,
		Tx:         db,
		Views:      service.NewViewCounter(deps.Stats, deps.Cache, deps.Config.Stats.ViewCacheTTL, nil),
		Hits:       deps.Hits,
		Config:     deps.Config.Event,
	})

	router.NewEventRouter(
		controller.NewAdminEventController(admin),
		controller.NewPrivateEventController(private),
		controller.NewPublicEventController(public),
	).Setup(e, mw)

	return events, public
}
