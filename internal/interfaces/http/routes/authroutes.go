package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	SessionAuth *middleware.SessionAuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", config.AuthHandler.Login)
			// Logout and current-user read the cookie themselves so that
			// logout stays idempotent for callers without a session.
			sessions.GET("/current", config.AuthHandler.CurrentUser)
			sessions.DELETE("/current", config.AuthHandler.Logout)
		}

		api.GET("/auth-token",
			config.SessionAuth.RequireSession(),
			config.AuthHandler.IssueToken)
	}
}
