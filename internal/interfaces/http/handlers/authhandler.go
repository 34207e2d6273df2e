package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase       usecases.LoginExecutor
	logoutUseCase      usecases.LogoutExecutor
	currentUserUseCase usecases.CurrentUserExecutor
	issueTokenUseCase  usecases.IssueAccessTokenExecutor
	cookieConfig       config.CookieConfig
	logger             logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	currentUserUC usecases.CurrentUserExecutor,
	issueTokenUC usecases.IssueAccessTokenExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:       loginUC,
		logoutUseCase:      logoutUC,
		currentUserUseCase: currentUserUC,
		issueTokenUseCase:  issueTokenUC,
		cookieConfig:       cookieConfig,
		logger:             logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the user and mounts the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.ShouldLogAuthError(err) {
			h.logger.Errorw("login failed", "error", err, "username", req.Username)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(result.ExpiresAt.Sub(biztime.NowUTC()).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.SessionID, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user_id":  result.UserID,
		"username": result.Username,
		"is_admin": result.IsAdmin,
	})
}

// Logout ends the session. It succeeds even without one.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := utils.GetSessionFromCookie(c, h.cookieConfig.Name)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{SessionID: sessionID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.NoContentResponse(c)
}

// CurrentUser returns the identity behind the session cookie.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sessionID := utils.GetSessionFromCookie(c, h.cookieConfig.Name)

	result, err := h.currentUserUseCase.Execute(c.Request.Context(), usecases.CurrentUserQuery{SessionID: sessionID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_id":  result.UserID,
		"username": result.Username,
		"is_admin": result.IsAdmin,
	})
}

// IssueToken mints a short-lived access token for the estimation service.
// Requires an authenticated session; the session middleware has already
// stored the caller's role in the context.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.issueTokenUseCase.Execute(c.Request.Context(), usecases.IssueAccessTokenQuery{Role: role})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token":      result.Token,
		"authLevel":  result.AuthLevel,
		"expires_in": result.ExpiresIn,
	})
}
