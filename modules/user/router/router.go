package router

import (
	"event-hub/core/middleware"
	"event-hub/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	adminRoutes := e.Group("/api/v1/admin/users", mw.AdminAuth())

	adminRoutes.POST("", r.UserController.Create)
	adminRoutes.GET("", r.UserController.List)
	adminRoutes.DELETE("/:userId", r.UserController.Delete)
}
