package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler *handlers.TicketHandler
	SessionAuth   *middleware.SessionAuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	{
		// The listing is the public landing view; everything else needs a
		// session.
		tickets.GET("", config.TicketHandler.List)

		authed := tickets.Group("")
		authed.Use(config.SessionAuth.RequireSession())
		{
			authed.POST("", config.TicketHandler.Create)

			// Specific paths before the parameterized /:id route.
			authed.GET("/:id/blocks", config.TicketHandler.ListBlocks)
			authed.POST("/:id/blocks", config.TicketHandler.CreateBlock)
			authed.PATCH("/:id/status", config.TicketHandler.ToggleState)
			authed.PATCH("/:id/category",
				authorization.RequireAdmin(),
				config.TicketHandler.ChangeCategory)

			authed.GET("/:id", config.TicketHandler.Get)
		}
	}
}
