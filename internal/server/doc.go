// Package server provides the HTTP server for the inventory manager.
//
// The server uses the Gin web framework and listens on plain HTTP on the local
// machine.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server :8000                     │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (ginzap.Ginzap, "http" logger)                  │  │
//	│  │  Recovery (ginzap.RecoveryWithZap)                      │  │
//	│  │  Metrics (requests by method, route, status)            │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics  Prometheus exposition                              │
//	│  /health   liveness                                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  API middlewares (Authenticate or StaticPrincipal)      │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): Gin runs in debug mode.
//
// Production Mode (ServerMode = "prod"): Gin runs in release mode.
//
// # Authentication
//
// With authentication enabled the API group runs middlewares.Authenticate: a
// valid bearer token becomes the request principal, which the audit stamper
// and the permission checks read. Requests without a token fall back to the
// process session (guest, read-only). With authentication disabled,
// middlewares.StaticPrincipal makes every request act as a local administrator.
//
// # Usage Example
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	}, middlewares.Authenticate(tokens))
//	if err != nil {
//	    return err
//	}
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
package server
