package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/config"
	"github.com/unison/inventory-manager/internal/handlers"
	"github.com/unison/inventory-manager/internal/server"
	"github.com/unison/inventory-manager/internal/server/middlewares"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	defaults := config.NewConfigurationWithDefaults()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.ValidateServer(); err != nil {
				return err
			}
			return c.run(cmd.Context(), serve)
		},
	}

	flags := cmd.Flags()
	flags.Int("port", defaults.Server.HTTPPort, "HTTP listen port")
	flags.String("mode", defaults.Server.ServerMode, "server mode: dev or prod")
	flags.Bool("auth", defaults.Auth.Enabled, "require bearer tokens for writes; when false every request acts as a local admin")
	flags.String("jwt-secret", "", "HMAC secret used to sign API tokens")
	bindFlags(c.v, flags, map[string]string{
		"port":       "server.http_port",
		"mode":       "server.mode",
		"auth":       "auth.enabled",
		"jwt-secret": "auth.jwt_secret",
	})
	return cmd
}

func serve(ctx context.Context, a *app) error {
	logger := zap.S().Named("server")

	// Requests never inherit the CLI login.
	a.auth.Logout()

	secret := a.cfg.Auth.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	tokens, err := auth.NewTokenIssuer(secret, a.cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	principal := middlewares.Authenticate(tokens)
	if !a.cfg.Auth.Enabled {
		logger.Warn("authentication disabled, requests act as the local admin")
		principal = middlewares.StaticPrincipal(localAdmin)
	}

	h := handlers.New(a.warehouses, a.products, a.auth, tokens)
	srv, err := server.NewServer(a.cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	}, principal)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
