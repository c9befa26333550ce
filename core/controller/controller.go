package controller

import (
	"event-hub/core/errors"
	"event-hub/core/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}

	ValidationError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
)

type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	CreatedResponse(c echo.Context, data any, message string) error
	NoContent(c echo.Context) error
	ErrorResponse(c echo.Context, err *errors.AppError, details ...any) error
	BindAndValidate(c echo.Context, req any) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(appErrCode errors.ErrorCode, message string, details ...any) *ErrorResponse {
	resp := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	return resp
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// StatusFor maps an application error code to its HTTP status.
func StatusFor(code errors.ErrorCode) int {
	switch {
	case code == errors.ErrNotFound:
		return http.StatusNotFound
	case errors.IsConflict(code):
		return http.StatusConflict
	case errors.IsBadRequest(code):
		return http.StatusBadRequest
	}

	switch code {
	case errors.ErrUnauthorized, errors.ErrTokenExpired, errors.ErrInvalidTokenFormat, errors.ErrMissingAuthorizationHeader:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, NewErrorResponse(appErrCode, message, details...))
}

func (h *responseHandler) NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, NewErrorResponse(appErrCode, message, details...))
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

func (h *responseHandler) CreatedResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, NewSuccessResponse(http.StatusCreated, data, message))
}

func (h *responseHandler) NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// ErrorResponse writes err with its mapped status. details carries partial
// results for calls that committed work before failing.
func (h *responseHandler) ErrorResponse(c echo.Context, err *errors.AppError, details ...any) error {
	if err == nil {
		err = errors.NewAppError(errors.ErrInternalServer, "internal server error", nil)
	}

	httpStatus := StatusFor(err.Code)
	msg := err.Message
	if msg == "" {
		msg = "internal server error"
	}

	if httpStatus >= http.StatusInternalServerError {
		logger.Error("BaseController:ErrorResponse",
			"status", httpStatus,
			"code", err.Code,
			"message", msg,
			"error", err.Err,
		)
	} else {
		logger.Warn("BaseController:ErrorResponse",
			"status", httpStatus,
			"code", err.Code,
			"message", msg,
		)
	}
	return c.JSON(httpStatus, NewErrorResponse(err.Code, msg, details...))
}

// BindAndValidate binds the request body, normalizes it when the type
// supports it, and runs the registered validator.
func (h *responseHandler) BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return h.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if n, ok := req.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := c.Validate(req); err != nil {
		if details, ok := err.(interface{ Details() []ValidationError }); ok {
			return h.BadRequest(errors.ErrInvalidInput, "validation failed", details.Details())
		}
		return h.BadRequest(errors.ErrInvalidInput, err.Error())
	}
	return nil
}

// HTTPErrorHandler renders errors returned from handlers, including echo's
// own routing errors, in the ErrorResponse shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var body *ErrorResponse

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch msg := he.Message.(type) {
		case *ErrorResponse:
			body = msg
		case string:
			body = NewErrorResponse(codeForStatus(status), msg)
		default:
			body = NewErrorResponse(codeForStatus(status), http.StatusText(status))
		}
	} else if appErr := errors.FromError(err); appErr != nil {
		status = StatusFor(appErr.Code)
		body = NewErrorResponse(appErr.Code, appErr.Message)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("BaseController:HTTPErrorHandler", "status", status, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}

func codeForStatus(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return errors.ErrInvalidInput
	case http.StatusUnauthorized:
		return errors.ErrUnauthorized
	case http.StatusForbidden:
		return errors.ErrForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errors.ErrNotFound
	case http.StatusConflict:
		return errors.ErrConflict
	default:
		return errors.ErrInternalServer
	}
}
