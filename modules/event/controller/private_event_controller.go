package controller

import (
	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/service"

	"github.com/labstack/echo/v4"
)

type PrivateEventController struct {
	controller.BaseController
	EventService service.PrivateEventService
}

func NewPrivateEventController(svc service.PrivateEventService) *PrivateEventController {
	return &PrivateEventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// Create handles POST /users/:userId/events
func (c *PrivateEventController) Create(ctx echo.Context) error {
	userID, err := int64Param(ctx, "userId")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}

	var req dto.NewEventRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.EventService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Event created successfully")
}

// List handles GET /users/:userId/events?from=&size=
func (c *PrivateEventController) List(ctx echo.Context) error {
	userID, err := int64Param(ctx, "userId")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.EventService.ListByInitiator(ctx.Request().Context(), userID, page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /users/:userId/events/:eventId
func (c *PrivateEventController) Get(ctx echo.Context) error {
	userID, eventID, err := c.ids(ctx)
	if err != nil {
		return err
	}

	result, appErr := c.EventService.Get(ctx.Request().Context(), userID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PATCH /users/:userId/events/:eventId
func (c *PrivateEventController) Update(ctx echo.Context) error {
	userID, eventID, err := c.ids(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateEventUserRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), userID, eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

func (c *PrivateEventController) ids(ctx echo.Context) (int64, int64, error) {
	userID, err := int64Param(ctx, "userId")
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}
	eventID, err := int64Param(ctx, "eventId")
	if err != nil {
		return 0, 0, c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}
	return userID, eventID, nil
}
