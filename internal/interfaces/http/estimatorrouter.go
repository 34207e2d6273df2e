package http

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/estimation"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

// EstimatorRouter wires the standalone estimation service. It holds no
// database handle; a bearer token from the main server is the only
// credential it understands.
type EstimatorRouter struct {
	engine            *gin.Engine
	estimationHandler *handlers.EstimationHandler
	tokenAuth         *middleware.TokenAuthMiddleware
	allowedOrigins    []string
	logger            logger.Interface
}

func NewEstimatorRouter(service *estimation.Service, cfg *config.Config, log logger.Interface) *EstimatorRouter {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	handlers.RegisterValidators()

	tokenService := auth.NewTokenService(cfg.Auth.Token.Secret, cfg.Auth.Token.ExpirySeconds)

	return &EstimatorRouter{
		engine:            engine,
		estimationHandler: handlers.NewEstimationHandler(service, log),
		tokenAuth:         middleware.NewTokenAuthMiddleware(tokenService, log),
		allowedOrigins:    cfg.Estimator.AllowedOrigins,
		logger:            log,
	}
}

func (r *EstimatorRouter) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupEstimationRoutes(r.engine, &routes.EstimationRouteConfig{
		EstimationHandler: r.estimationHandler,
		TokenAuth:         r.tokenAuth,
	})
}

func (r *EstimatorRouter) GetEngine() *gin.Engine {
	return r.engine
}

func (r *EstimatorRouter) Run(addr string) error {
	return r.engine.Run(addr)
}
