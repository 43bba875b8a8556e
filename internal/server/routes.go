package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

// registerRoutes sets up all chat routes on the Gin router.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	router.POST("/chat", handleChat(opts))
	router.OPTIONS("/chat", handleChatOptions())
	router.GET("/healthz", handleHealthz())
}

// handleChat validates the inbound message, resolves the session from
// the cookie, and returns the service's reply. The session cookie is
// refreshed on every successful response.
func handleChat(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"reply": fmt.Sprintf("Sorry, I couldn't process your request. Error: %v", err),
			})
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"reply": "Please provide a message."})
			return
		}

		cookie, _ := c.Cookie(opts.CookieName)
		token := opts.Service.ResolveToken(cookie)

		reply := opts.Service.Respond(c.Request.Context(), token, message)

		c.SetCookie(opts.CookieName, token, opts.CookieMaxAge, "/", "", false, false)
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// handleChatOptions answers OPTIONS requests that are not CORS
// preflights (those are intercepted by the CORS middleware before the
// route runs). Any OPTIONS on /chat succeeds.
func handleChatOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	}
}

func handleHealthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
