package middleware

import (
	stderrors "errors"
	"strings"
	"time"

	"event-hub/core/config"
	"event-hub/core/constants"
	"event-hub/core/controller"
	"event-hub/core/errors"
	"event-hub/core/logger"
	"event-hub/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Middleware struct {
	auth config.AuthConfig
}

func NewMiddleware(auth config.AuthConfig) *Middleware {
	if auth.AdminJWTSecret == "" {
		logger.Warn("Middleware:NewMiddleware:AdminAuthDisabled", "reason", "auth.admin_jwt_secret is empty")
	}
	return &Middleware{auth: auth}
}

// RequestID tags every request with an id, reusing the caller's header when present.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = utils.GenerateRequestID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request through the application logger.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond).String(),
				"remote_ip", v.RemoteIP,
				"request_id", c.Get(constants.ContextRequestID),
			}
			if v.Error != nil {
				logger.Warn("HTTP:Request", append(args, "error", v.Error)...)
				return nil
			}
			logger.Info("HTTP:Request", args...)
			return nil
		},
	})
}

// AdminAuth requires a bearer token carrying the admin role. It is a
// pass-through when no admin secret is configured.
func (m *Middleware) AdminAuth() echo.MiddlewareFunc {
	base := controller.NewBaseController()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.auth.AdminJWTSecret == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return base.ErrorResponse(c, errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil))
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return base.ErrorResponse(c, errors.NewAppError(errors.ErrInvalidTokenFormat, "authorization header must be a bearer token", nil))
			}

			claims, err := utils.ValidateAndParseToken(m.auth.AdminJWTSecret, m.auth.Issuer, strings.TrimSpace(token))
			if err != nil {
				if stderrors.Is(err, utils.ErrTokenExpired) {
					return base.ErrorResponse(c, errors.NewAppError(errors.ErrTokenExpired, "token expired", err))
				}
				return base.ErrorResponse(c, errors.NewAppError(errors.ErrUnauthorized, "invalid token", err))
			}

			if claims.Role != constants.RoleAdmin {
				return base.ErrorResponse(c, errors.NewAppError(errors.ErrForbidden, "admin role required", nil))
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
