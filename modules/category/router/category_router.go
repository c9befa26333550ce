package router

import (
	"event-hub/core/middleware"
	"event-hub/modules/category/controller"

	"github.com/labstack/echo/v4"
)

type CategoryRouter struct {
	CategoryController *controller.CategoryController
}

func NewCategoryRouter(categoryController *controller.CategoryController) *CategoryRouter {
	return &CategoryRouter{CategoryController: categoryController}
}

func (r *CategoryRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	publicRoutes := e.Group("/api/v1/categories")
	publicRoutes.GET("", r.CategoryController.List)
	publicRoutes.GET("/:catId", r.CategoryController.Get)

	adminRoutes := e.Group("/api/v1/admin/categories", mw.AdminAuth())
	adminRoutes.POST("", r.CategoryController.Create)
	adminRoutes.PATCH("/:catId", r.CategoryController.Update)
	adminRoutes.DELETE("/:catId", r.CategoryController.Delete)
}
