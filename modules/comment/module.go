package comment

import (
	"event-hub/core/database"
	"event-hub/core/middleware"
	"event-hub/modules/comment/controller"
	"event-hub/modules/comment/repository"
	"event-hub/modules/comment/router"
	"event-hub/modules/comment/service"

	"github.com/labstack/echo/v4"
)

// Init registers the private and admin comment routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, events service.EventLookup, users service.UserLookup) *service.CommentService {
	repo := repository.NewCommentRepository(db)
	svc := service.NewCommentService(repo, events, users, nil)
	ctrl := controller.NewCommentController(svc)
	router.NewCommentRouter(ctrl).Setup(e, mw)
	return svc
}
