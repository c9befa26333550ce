package category

import (
	"event-hub/core/database"
	"event-hub/core/middleware"
	"event-hub/modules/category/controller"
	"event-hub/modules/category/repository"
	"event-hub/modules/category/router"
	"event-hub/modules/category/service"

	"github.com/labstack/echo/v4"
)

// Init registers the category routes and returns the service for other modules.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.CategoryService {
	repo := repository.NewCategoryRepository(db)
	svc := service.NewCategoryService(repo, db)
	ctrl := controller.NewCategoryController(svc)
	router.NewCategoryRouter(ctrl).Setup(e, mw)
	return svc
}
