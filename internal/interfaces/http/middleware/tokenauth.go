package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// TokenAuthMiddleware guards the estimation endpoints. It accepts only the
// short-lived bearer tokens minted by the main server; there are no sessions
// on this service.
type TokenAuthMiddleware struct {
	tokenService *auth.TokenService
	logger       logger.Interface
}

func NewTokenAuthMiddleware(tokenService *auth.TokenService, logger logger.Interface) *TokenAuthMiddleware {
	return &TokenAuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

func (m *TokenAuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewNotAuthenticatedError())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError("authorization header"))
			c.Abort()
			return
		}

		claims, err := m.tokenService.Verify(parts[1])
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("token verification failed", "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTokenRole, string(claims.Role))

		c.Next()
	}
}
