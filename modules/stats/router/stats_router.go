package router

import (
	"event-hub/modules/stats/controller"

	"github.com/labstack/echo/v4"
)

type StatsRouter struct {
	StatsController *controller.StatsController
}

func NewStatsRouter(statsController *controller.StatsController) *StatsRouter {
	return &StatsRouter{StatsController: statsController}
}

func (r *StatsRouter) Setup(e *echo.Echo) {
	e.POST("/hit", r.StatsController.Hit)
	e.GET("/stats", r.StatsController.Stats)
}
