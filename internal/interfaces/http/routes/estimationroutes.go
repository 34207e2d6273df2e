package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type EstimationRouteConfig struct {
	EstimationHandler *handlers.EstimationHandler
	TokenAuth         *middleware.TokenAuthMiddleware
}

func SetupEstimationRoutes(engine *gin.Engine, config *EstimationRouteConfig) {
	api := engine.Group("/api")
	api.Use(config.TokenAuth.RequireToken())
	{
		api.POST("/estimation", config.EstimationHandler.Estimate)
		api.POST("/estimations", config.EstimationHandler.EstimateBatch)
	}
}
