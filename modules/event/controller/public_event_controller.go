package controller

import (
	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/modules/event/service"

	"github.com/labstack/echo/v4"
)

type PublicEventController struct {
	controller.BaseController
	EventService service.PublicEventService
}

func NewPublicEventController(svc service.PublicEventService) *PublicEventController {
	return &PublicEventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// Search handles GET /events?text=&categories=&paid=&range_start=&range_end=&only_available=&sort=&from=&size=
func (c *PublicEventController) Search(ctx echo.Context) error {
	result, appErr := c.EventService.Search(ctx.Request().Context(), searchQueryFrom(ctx), service.HitSource{IP: ctx.RealIP()})
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /events/:id
func (c *PublicEventController) Get(ctx echo.Context) error {
	eventID, err := int64Param(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.Get(ctx.Request().Context(), eventID, service.HitSource{IP: ctx.RealIP()})
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
