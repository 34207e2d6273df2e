package usecases

import (
	"context"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type IssueAccessTokenQuery struct {
	Role authorization.UserRole
}

type IssueAccessTokenResult struct {
	Token     string
	AuthLevel string
	ExpiresIn int64
}

// IssueAccessTokenUseCase mints the short-lived token the estimation
// service accepts. The token carries only the caller's authorization level;
// clients are expected to re-request it before it runs out.
type IssueAccessTokenUseCase struct {
	tokenService *auth.TokenService
	logger       logger.Interface
}

func NewIssueAccessTokenUseCase(
	tokenService *auth.TokenService,
	logger logger.Interface,
) *IssueAccessTokenUseCase {
	return &IssueAccessTokenUseCase{
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *IssueAccessTokenUseCase) Execute(ctx context.Context, query IssueAccessTokenQuery) (*IssueAccessTokenResult, error) {
	if !query.Role.IsValid() {
		return nil, errors.NewValidationError("invalid authorization level")
	}

	token, err := uc.tokenService.Generate(query.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Debugw("access token issued", "auth_level", query.Role)

	return &IssueAccessTokenResult{
		Token:     token.Token,
		AuthLevel: token.Role.String(),
		ExpiresIn: token.ExpiresIn,
	}, nil
}
