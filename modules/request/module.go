package request

import (
	"event-hub/core/database"
	"event-hub/modules/request/controller"
	"event-hub/modules/request/repository"
	"event-hub/modules/request/router"
	"event-hub/modules/request/service"

	"github.com/labstack/echo/v4"
)

// Init registers the participation request routes.
func Init(e *echo.Echo, db database.Database, events service.EventStore, users service.UserLookup) *service.RequestService {
	repo := repository.NewRequestRepository(db)
	svc := service.NewRequestService(repo, events, users, db, nil)
	ctrl := controller.NewRequestController(svc)
	router.NewRequestRouter(ctrl).Setup(e)
	return svc
}
