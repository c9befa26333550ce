package stats

import (
	"event-hub/core/database"
	"event-hub/modules/stats/controller"
	"event-hub/modules/stats/repository"
	"event-hub/modules/stats/router"
	"event-hub/modules/stats/service"

	"github.com/labstack/echo/v4"
)

// Init registers the hit and stats endpoints.
func Init(e *echo.Echo, db database.Database) *service.StatsService {
	repo := repository.NewHitRepository(db)
	svc := service.NewStatsService(repo)
	ctrl := controller.NewStatsController(svc)
	router.NewStatsRouter(ctrl).Setup(e)
	return svc
}
