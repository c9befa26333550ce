package controller

import (
	"strconv"

	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/modules/request/dto"
	"event-hub/modules/request/service"

	"github.com/labstack/echo/v4"
)

type RequestController struct {
	controller.BaseController
	RequestService service.RequestServiceInterface
}

func NewRequestController(svc service.RequestServiceInterface) *RequestController {
	return &RequestController{
		BaseController: controller.NewBaseController(),
		RequestService: svc,
	}
}

// Create handles POST /users/:userId/requests?event_id=
func (c *RequestController) Create(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	eventID, err := strconv.ParseInt(ctx.QueryParam("event_id"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "event_id is required")
	}

	result, appErr := c.RequestService.Create(ctx.Request().Context(), userID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Request created successfully")
}

// Cancel handles PATCH /users/:userId/requests/:requestId/cancel
func (c *RequestController) Cancel(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	requestID, err := strconv.ParseInt(ctx.Param("requestId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request ID")
	}

	result, appErr := c.RequestService.Cancel(ctx.Request().Context(), userID, requestID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Request canceled")
}

// ListOwn handles GET /users/:userId/requests
func (c *RequestController) ListOwn(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}

	result, appErr := c.RequestService.ListByRequester(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListForEvent handles GET /users/:userId/events/:eventId/requests
func (c *RequestController) ListForEvent(ctx echo.Context) error {
	userID, eventID, err := c.ownerIDs(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.RequestService.ListForEvent(ctx.Request().Context(), userID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateStatuses handles PATCH /users/:userId/events/:eventId/requests
func (c *RequestController) UpdateStatuses(ctx echo.Context) error {
	userID, eventID, err := c.ownerIDs(ctx)
	if err != nil {
		return err
	}

	var req dto.StatusUpdateRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.RequestService.UpdateStatuses(ctx.Request().Context(), userID, eventID, &req)
	if appErr != nil {
		if result != nil {
			return c.ErrorResponse(ctx, appErr, result)
		}
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Request statuses updated")
}

func (c *RequestController) ownerIDs(ctx echo.Context) (int64, int64, error) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	eventID, err := strconv.ParseInt(ctx.Param("eventId"), 10, 64)
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}
	return userID, eventID, nil
}
