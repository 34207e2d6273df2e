package middleware

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// SessionAuthMiddleware resolves the opaque session cookie into the current
// user and stores the identity in the gin context.
type SessionAuthMiddleware struct {
	currentUser usecases.CurrentUserExecutor
	cookieName  string
	logger      logger.Interface
}

func NewSessionAuthMiddleware(
	currentUser usecases.CurrentUserExecutor,
	cookieName string,
	logger logger.Interface,
) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		currentUser: currentUser,
		cookieName:  cookieName,
		logger:      logger,
	}
}

func (m *SessionAuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := utils.GetSessionFromCookie(c, m.cookieName)
		if sessionID == "" {
			utils.ErrorResponseWithError(c, errors.NewNotAuthenticatedError())
			c.Abort()
			return
		}

		result, err := m.currentUser.Execute(c.Request.Context(), usecases.CurrentUserQuery{SessionID: sessionID})
		if err != nil {
			if errors.ShouldLogAuthError(err) {
				m.logger.Warnw("session resolution failed", "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		role := authorization.RoleUser
		if result.IsAdmin {
			role = authorization.RoleAdmin
		}

		c.Set(constants.ContextKeyUserID, result.UserID)
		c.Set(constants.ContextKeyUsername, result.Username)
		c.Set(constants.ContextKeyUserRole, string(role))
		c.Set(constants.ContextKeySessionID, sessionID)

		c.Next()
	}
}
