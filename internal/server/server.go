// Package server exposes the chat service over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/solacebot/solace/internal/chat"
)

// StartOpts holds configuration for the chat HTTP server.
type StartOpts struct {
	Service      *chat.Service
	Port         int
	CookieName   string
	CookieMaxAge int // seconds
	Out          io.Writer
}

// Start launches the chat HTTP server. It blocks until ctx is cancelled,
// then shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Service == nil {
		return fmt.Errorf("server: service is required")
	}
	if opts.Port <= 0 {
		opts.Port = 5000
	}
	if opts.CookieName == "" {
		opts.CookieName = "session_id"
	}
	if opts.CookieMaxAge <= 0 {
		opts.CookieMaxAge = 86400
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(opts)

	addr := fmt.Sprintf(":%d", opts.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "Solace listening at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// newRouter builds the gin engine with middleware and routes.
func newRouter(opts StartOpts) *gin.Engine {
	router := gin.New()
	router.Use(recoverToReply())
	router.Use(corsMiddleware())
	registerRoutes(router, opts)
	return router
}

// corsMiddleware allows any origin with credentials, mirroring the
// permissive policy the browser frontend expects. The middleware also
// answers OPTIONS preflights.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	})
}

// recoverToReply converts a handler panic into the user-visible error
// reply instead of a bare 500. API failures never reach here; they are
// absorbed by the fallback path.
func recoverToReply() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"reply": fmt.Sprintf("Sorry, I couldn't process your request. Error: %v", err),
		})
	})
}
