package controller

import (
	"strconv"

	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/category/dto"
	"event-hub/modules/category/service"

	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	controller.BaseController
	CategoryService service.CategoryServiceInterface
}

func NewCategoryController(svc service.CategoryServiceInterface) *CategoryController {
	return &CategoryController{
		BaseController:  controller.NewBaseController(),
		CategoryService: svc,
	}
}

// Create handles POST /admin/categories
func (c *CategoryController) Create(ctx echo.Context) error {
	var req dto.CategoryRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CategoryService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Category created successfully")
}

// Update handles PATCH /admin/categories/:catId
func (c *CategoryController) Update(ctx echo.Context) error {
	id, err := parseCategoryID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.CategoryService.Update(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Category updated successfully")
}

// Delete handles DELETE /admin/categories/:catId
func (c *CategoryController) Delete(ctx echo.Context) error {
	id, err := parseCategoryID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category ID")
	}

	if appErr := c.CategoryService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContent(ctx)
}

// Get handles GET /categories/:catId
func (c *CategoryController) Get(ctx echo.Context) error {
	id, err := parseCategoryID(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid category ID")
	}

	result, appErr := c.CategoryService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /categories?from=&size=
func (c *CategoryController) List(ctx echo.Context) error {
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.CategoryService.List(ctx.Request().Context(), page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

func parseCategoryID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("catId"), 10, 64)
}
