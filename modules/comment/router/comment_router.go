package router

import (
	"event-hub/core/middleware"
	"event-hub/modules/comment/controller"

	"github.com/labstack/echo/v4"
)

type CommentRouter struct {
	CommentController *controller.CommentController
}

func NewCommentRouter(commentController *controller.CommentController) *CommentRouter {
	return &CommentRouter{CommentController: commentController}
}

func (r *CommentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	userRoutes := e.Group("/api/v1/users/:userId")
	userRoutes.POST("/events/:eventId/comments", r.CommentController.Create)
	userRoutes.GET("/comments", r.CommentController.ListOwn)
	userRoutes.GET("/comments/:commentId", r.CommentController.GetOwn)
	userRoutes.PATCH("/comments/:commentId", r.CommentController.UpdateOwn)
	userRoutes.DELETE("/comments/:commentId", r.CommentController.DeleteOwn)

	adminRoutes := e.Group("/api/v1/admin/comments", mw.AdminAuth())
	adminRoutes.GET("", r.CommentController.AdminList)
	adminRoutes.GET("/:commentId", r.CommentController.AdminGet)
	adminRoutes.PATCH("/:commentId", r.CommentController.AdminUpdate)
	adminRoutes.DELETE("/:commentId", r.CommentController.AdminDelete)
}
