package router

import (
	"event-hub/core/middleware"
	"event-hub/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	AdminController   *controller.AdminEventController
	PrivateController *controller.PrivateEventController
	PublicController  *controller.PublicEventController
}

func NewEventRouter(
	adminController *controller.AdminEventController,
	privateController *controller.PrivateEventController,
	publicController *controller.PublicEventController,
) *EventRouter {
	return &EventRouter{
		AdminController:   adminController,
		PrivateController: privateController,
		PublicController:  publicController,
	}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	adminRoutes := e.Group("/api/v1/admin/events", mw.AdminAuth())
	adminRoutes.GET("", r.AdminController.Search)
	adminRoutes.PATCH("/:eventId", r.AdminController.Update)

	privateRoutes := e.Group("/api/v1/users/:userId/events")
	privateRoutes.POST("", r.PrivateController.Create)
	privateRoutes.GET("", r.PrivateController.List)
	privateRoutes.GET("/:eventId", r.PrivateController.Get)
	privateRoutes.PATCH("/:eventId", r.PrivateController.Update)

	publicRoutes := e.Group("/api/v1/events")
	publicRoutes.GET("", r.PublicController.Search)
	publicRoutes.GET("/:id", r.PublicController.Get)
}
