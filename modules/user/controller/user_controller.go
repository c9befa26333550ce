package controller

import (
	"strconv"

	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/params"
	"event-hub/modules/user/dto"
	"event-hub/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// Create handles POST /admin/users
func (c *UserController) Create(ctx echo.Context) error {
	var req dto.NewUserRequest
	if err := c.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	result, appErr := c.UserService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "User created successfully")
}

// List handles GET /admin/users?ids=&from=&size=
func (c *UserController) List(ctx echo.Context) error {
	page, err := params.NewQueryParams(ctx.QueryParam("from"), ctx.QueryParam("size"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}
	ids, err := params.ParseInt64List(ctx.QueryParams()["ids"])
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.UserService.List(ctx.Request().Context(), ids, page)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Delete handles DELETE /admin/users/:userId
func (c *UserController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user ID")
	}

	if appErr := c.UserService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.NoContent(ctx)
}
