package router

import (
	"event-hub/modules/request/controller"

	"github.com/labstack/echo/v4"
)

type RequestRouter struct {
	RequestController *controller.RequestController
}

func NewRequestRouter(requestController *controller.RequestController) *RequestRouter {
	return &RequestRouter{RequestController: requestController}
}

func (r *RequestRouter) Setup(e *echo.Echo) {
	userRoutes := e.Group("/api/v1/users/:userId")

	userRoutes.GET("/requests", r.RequestController.ListOwn)
	userRoutes.POST("/requests", r.RequestController.Create)
	userRoutes.PATCH("/requests/:requestId/cancel", r.RequestController.Cancel)

	userRoutes.GET("/events/:eventId/requests", r.RequestController.ListForEvent)
	userRoutes.PATCH("/events/:eventId/requests", r.RequestController.UpdateStatuses)
}
