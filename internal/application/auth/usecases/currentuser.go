package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CurrentUserQuery struct {
	SessionID string
}

type CurrentUserResult struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

type CurrentUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewCurrentUserUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *CurrentUserUseCase {
	return &CurrentUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, query CurrentUserQuery) (*CurrentUserResult, error) {
	if query.SessionID == "" {
		return nil, errors.NewNotAuthenticatedError()
	}

	session, err := uc.sessionRepo.GetByID(query.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to look up session", "error", err)
		return nil, errors.NewInternalError("failed to look up session")
	}
	if session == nil {
		return nil, errors.NewNotAuthenticatedError()
	}

	u, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		// The session references a user that no longer exists; treat the
		// session as dead.
		uc.logger.Warnw("session references missing user", "user_id", session.UserID)
		return nil, errors.NewNotAuthenticatedError()
	}

	return &CurrentUserResult{
		UserID:   u.ID(),
		Username: u.Username(),
		IsAdmin:  u.IsAdmin(),
	}, nil
}
