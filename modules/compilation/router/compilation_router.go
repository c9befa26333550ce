package router

import (
	"event-hub/core/middleware"
	"event-hub/modules/compilation/controller"

	"github.com/labstack/echo/v4"
)

type CompilationRouter struct {
	CompilationController *controller.CompilationController
}

func NewCompilationRouter(compilationController *controller.CompilationController) *CompilationRouter {
	return &CompilationRouter{CompilationController: compilationController}
}

func (r *CompilationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	publicRoutes := e.Group("/api/v1/compilations")
	publicRoutes.GET("", r.CompilationController.List)
	publicRoutes.GET("/:compId", r.CompilationController.Get)

	adminRoutes := e.Group("/api/v1/admin/compilations", mw.AdminAuth())
	adminRoutes.POST("", r.CompilationController.Create)
	adminRoutes.PATCH("/:compId", r.CompilationController.Update)
	adminRoutes.DELETE("/:compId", r.CompilationController.Delete)
}
