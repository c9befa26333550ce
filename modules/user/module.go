package user

import (
	"event-hub/core/database"
	"event-hub/core/middleware"
	"event-hub/modules/user/controller"
	"event-hub/modules/user/repository"
	"event-hub/modules/user/router"
	"event-hub/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init registers the user routes and returns the service for other modules.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.UserService {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)
	router.NewUserRouter(ctrl).Setup(e, mw)
	return svc
}
