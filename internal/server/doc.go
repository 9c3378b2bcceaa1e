// Package server provides the HTTP server of the record manager.
//
// The server uses the Gin web framework. All API routes live under /api/v1
// and are registered by the caller through a callback, so the server knows
// nothing about records or views.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server :8000                     │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request logging, "http" logger)         │  │
//	│  │  ginzap.RecoveryWithZap (panic → 500, stack logged)     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  NoRoute: /api/* → 404 JSON, anything else → /api/v1/view     │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
//	┌──────┬──────────────────┐
//	│ Mode │ Gin mode         │
//	├──────┼──────────────────┤
//	│ dev  │ gin.DebugMode    │
//	│ prod │ gin.ReleaseMode  │
//	└──────┴──────────────────┘
//
// # Usage Example
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, handlers.New(mgr))
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Blocks until ctx is canceled, then shuts down gracefully.
//	err = srv.Start(ctx)
package server
