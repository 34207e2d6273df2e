package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "helpdesk/internal/application/auth/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

// Router wires the main helpdesk HTTP service: sessions, tickets and the
// access-token endpoint for the estimation service.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	ticketHandler  *handlers.TicketHandler
	sessionAuth    *middleware.SessionAuthMiddleware
	allowedOrigins []string
	logger         logger.Interface
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	handlers.RegisterValidators()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	sessionStore := session.NewMemoryStore()

	hasher := auth.NewScryptPasswordHasher(
		cfg.Auth.Password.ScryptN,
		cfg.Auth.Password.ScryptR,
		cfg.Auth.Password.ScryptP,
		cfg.Auth.Password.ScryptKeyLen,
	)
	tokenService := auth.NewTokenService(cfg.Auth.Token.Secret, cfg.Auth.Token.ExpirySeconds)
	htmlSanitizer := sanitizer.New()

	sessionExpiry := time.Duration(cfg.Auth.Session.ExpiryHours) * time.Hour

	loginUC := authusecases.NewLoginUseCase(userRepo, sessionStore, hasher, sessionExpiry, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionStore, log)
	currentUserUC := authusecases.NewCurrentUserUseCase(userRepo, sessionStore, log)
	issueTokenUC := authusecases.NewIssueAccessTokenUseCase(tokenService, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, htmlSanitizer, log)
	createBlockUC := ticketusecases.NewCreateBlockUseCase(ticketRepo, blockRepo, htmlSanitizer, log)
	toggleStateUC := ticketusecases.NewToggleStateUseCase(ticketRepo, log)
	changeCategoryUC := ticketusecases.NewChangeCategoryUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	listBlocksUC := ticketusecases.NewListBlocksUseCase(ticketRepo, blockRepo, log)

	authHandler := handlers.NewAuthHandler(
		loginUC, logoutUC, currentUserUC, issueTokenUC,
		cfg.Auth.Cookie, log,
	)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, createBlockUC, toggleStateUC, changeCategoryUC,
		getTicketUC, listTicketsUC, listBlocksUC, log,
	)

	sessionAuth := middleware.NewSessionAuthMiddleware(currentUserUC, cfg.Auth.Cookie.Name, log)

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		sessionAuth:    sessionAuth,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes configures global middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		SessionAuth: r.sessionAuth,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		SessionAuth:   r.sessionAuth,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
