package controller

import (
	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/service"

	"github.com/labstack/echo/v4"
)

type AdminEventController struct {
	controller.BaseController
	EventService service.AdminEventService
}

func NewAdminEventController(svc service.AdminEventService) *AdminEventController {
	return &AdminEventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// Search handles GET /admin/events?users=&states=&categories=&range_start=&range_end=&from=&size=
func (c *AdminEventController) Search(ctx echo.Context) error {
	result, appErr := c.EventService.Search(ctx.Request().Context(), searchQueryFrom(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PATCH /admin/events/:eventId
func (c *AdminEventController) Update(ctx echo.Context) error {
	eventID, err := int64Param(ctx, "eventId")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventAdminRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event updated successfully")
}
