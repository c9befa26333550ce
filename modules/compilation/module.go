package compilation

import (
	"event-hub/core/database"
	"event-hub/core/middleware"
	"event-hub/modules/compilation/controller"
	"event-hub/modules/compilation/repository"
	"event-hub/modules/compilation/router"
	"event-hub/modules/compilation/service"

	"github.com/labstack/echo/v4"
)

// Init registers the compilation routes. Events are resolved through the
// event module's summaries.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, events service.EventSummaries) *service.CompilationService {
	repo := repository.NewCompilationRepository(db)
	svc := service.NewCompilationService(repo, events, db)
	ctrl := controller.NewCompilationController(svc)
	router.NewCompilationRouter(ctrl).Setup(e, mw)
	return svc
}
