package controller

import (
	"strconv"

	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/compilation/dto"
	"event-hub/modules/compilation/service"

	"github.com/labstack/echo/v4"
)

type CompilationController struct {
	controller.BaseController
	CompilationService service.CompilationServiceInterface
}

func NewCompilationController(svc service.CompilationServiceInterface) *CompilationController {
	return &CompilationController{
		BaseController:     controller.NewBaseController(),
		CompilationService: svc,
	}
}

// Create handles POST /admin/compilations
func (c *CompilationController) Create(ctx echo.Context) error {
	var req dto.NewCompilationRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CompilationService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Compilation created successfully")
}

// Update handles PATCH /admin/compilations/:compId
func (c *CompilationController) Update(ctx echo.Context) error {
	id, err := parseCompilationID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid compilation ID")
	}

	var req dto.UpdateCompilationRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CompilationService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Compilation updated successfully")
}

// Delete handles DELETE /admin/compilations/:compId
func (c *CompilationController) Delete(ctx echo.Context) error {
	id, err := parseCompilationID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid compilation ID")
	}

	if appErr := c.CompilationService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContent(ctx)
}

// Get handles GET /compilations/:compId
func (c *CompilationController) Get(ctx echo.Context) error {
	id, err := parseCompilationID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid compilation ID")
	}

	result, appErr := c.CompilationService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /compilations?pinned=&from=&size=
func (c *CompilationController) List(ctx echo.Context) error {
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	var pinned *bool
	if raw := ctx.QueryParam("pinned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "pinned must be true or false")
		}
		pinned = &v
	}

	result, appErr := c.CompilationService.List(ctx.Request().Context(), pinned, page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

func parseCompilationID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("compId"), 10, 64)
}
