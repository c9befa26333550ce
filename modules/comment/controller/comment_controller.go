package controller

import (
	"strconv"

	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/comment/dto"
	"event-hub/modules/comment/service"

	"github.com/labstack/echo/v4"
)

type CommentController struct {
	controller.BaseController
	CommentService service.CommentServiceInterface
}

func NewCommentController(svc service.CommentServiceInterface) *CommentController {
	return &CommentController{
		BaseController: controller.NewBaseController(),
		CommentService: svc,
	}
}

// Create handles POST /users/:userId/events/:eventId/comments
func (c *CommentController) Create(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	eventID, err := strconv.ParseInt(ctx.Param("eventId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.CommentRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CommentService.Create(ctx.Request().Context(), userID, eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Comment created successfully")
}

// UpdateOwn handles PATCH /users/:userId/comments/:commentId
func (c *CommentController) UpdateOwn(ctx echo.Context) error {
	userID, commentID, err := c.authorIDs(ctx)
	if err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CommentService.UpdateOwn(ctx.Request().Context(), userID, commentID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Comment updated successfully")
}

// GetOwn handles GET /users/:userId/comments/:commentId
func (c *CommentController) GetOwn(ctx echo.Context) error {
	userID, commentID, err := c.authorIDs(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.CommentService.GetOwn(ctx.Request().Context(), userID, commentID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListOwn handles GET /users/:userId/comments?range_start=&range_end=&from=&size=
func (c *CommentController) ListOwn(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	query := dto.CommentListQuery{
		RangeStart: ctx.QueryParam("range_start"),
		RangeEnd:   ctx.QueryParam("range_end"),
	}
	result, appErr := c.CommentService.ListOwn(ctx.Request().Context(), userID, query, page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// DeleteOwn handles DELETE /users/:userId/comments/:commentId
func (c *CommentController) DeleteOwn(ctx echo.Context) error {
	userID, commentID, err := c.authorIDs(ctx)
	if err != nil {
		return err
	}

	if appErr := c.CommentService.DeleteOwn(ctx.Request().Context(), userID, commentID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContent(ctx)
}

// AdminList handles GET /admin/comments?event_id=&from=&size=
func (c *CommentController) AdminList(ctx echo.Context) error {
	eventID, err := strconv.ParseInt(ctx.QueryParam("event_id"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "event_id is required")
	}
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.CommentService.ListByEvent(ctx.Request().Context(), eventID, page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// AdminGet handles GET /admin/comments/:commentId
func (c *CommentController) AdminGet(ctx echo.Context) error {
	commentID, err := parseCommentID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid comment ID")
	}

	result, appErr := c.CommentService.Get(ctx.Request().Context(), commentID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// AdminUpdate handles PATCH /admin/comments/:commentId
func (c *CommentController) AdminUpdate(ctx echo.Context) error {
	commentID, err := parseCommentID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid comment ID")
	}

	var req dto.CommentRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CommentService.Update(ctx.Request().Context(), commentID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Comment updated successfully")
}

// AdminDelete handles DELETE /admin/comments/:commentId
func (c *CommentController) AdminDelete(ctx echo.Context) error {
	commentID, err := parseCommentID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid comment ID")
	}

	if appErr := c.CommentService.Delete(ctx.Request().Context(), commentID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContent(ctx)
}

func (c *CommentController) authorIDs(ctx echo.Context) (int64, int64, error) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	commentID, err := parseCommentID(ctx)
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid comment ID")
	}
	return userID, commentID, nil
}

func parseCommentID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("commentId"), 10, 64)
}
