// Command admintoken mints a bearer token accepted by the admin routes. It
// reads the same configuration as the server, so AUTH_ADMIN_JWT_SECRET and
// AUTH_ISSUER must match the running instance.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"event-hub/core/config"
	"event-hub/core/constants"
	"event-hub/core/logger"
	"event-hub/core/utils"

	"github.com/urfave/cli/v2"
)

var errNoSecret = errors.New("auth.admin_jwt_secret is empty; admin routes are open and need no token")

func main() {
	if err := newApp(config.Load, os.Stdout).Run(os.Args); err != nil {
		logger.Error("AdminToken:Run", "error", err)
		os.Exit(1)
	}
}

func newApp(load func() (*config.Config, error), out io.Writer) *cli.App {
	return &cli.App{
		Name:  "admintoken",
		Usage: "issue an admin bearer token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin", Usage: "token subject, usually the operator name"},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to auth.token_ttl"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ttl := c.Duration("ttl")
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL
			}
			token, err := issueAdminToken(cfg.Auth, c.String("subject"), ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, token)
			return err
		},
	}
}

func issueAdminToken(auth config.AuthConfig, subject string, ttl time.Duration) (string, error) {
	if auth.AdminJWTSecret == "" {
		return "", errNoSecret
	}
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	return utils.GenerateToken(auth.AdminJWTSecret, auth.Issuer, subject, constants.RoleAdmin, ttl)
}
