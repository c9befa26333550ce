package controller

import (
	"net/http"

	"event-hub/core/controller"
	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/stats/dto"
	"event-hub/modules/stats/service"

	"github.com/labstack/echo/v4"
)

// StatsController serves the bare wire contract consumed by the stats
// client, so responses are not wrapped in the success envelope.
type StatsController struct {
	controller.BaseController
	StatsService service.StatsServiceInterface
}

func NewStatsController(svc service.StatsServiceInterface) *StatsController {
	return &StatsController{
		BaseController: controller.NewBaseController(),
		StatsService:   svc,
	}
}

// Hit handles POST /hit
func (c *StatsController) Hit(ctx echo.Context) error {
	var req dto.EndpointHit
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.StatsService.RecordHit(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusCreated, result)
}

// Stats handles GET /stats?start=&end=&uris=&unique=
func (c *StatsController) Stats(ctx echo.Context) error {
	rawStart, rawEnd := ctx.QueryParam("start"), ctx.QueryParam("end")
	if rawStart == "" || rawEnd == "" {
		return c.BadRequest(errors.ErrInvalidInput, "start and end are required")
	}

	start, err := coredto.ParseDateTime(rawStart)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}
	end, err := coredto.ParseDateTime(rawEnd)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	unique, err := params.ParseOptionalBool(ctx.QueryParam("unique"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	uris := params.SplitList(ctx.QueryParams()["uris"])
	result, appErr := c.StatsService.GetStats(ctx.Request().Context(), start, end, uris, unique != nil && *unique)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, result)
}
