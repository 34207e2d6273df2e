package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	SessionID string
	UserID    uint
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

type LoginUseCase struct {
	userRepo      user.Repository
	sessionRepo   user.SessionRepository
	hasher        user.PasswordHasher
	sessionExpiry time.Duration
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	sessionExpiry time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		sessionExpiry: sessionExpiry,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "username", cmd.Username)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		// Unknown usernames and wrong passwords produce the same answer.
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login attempt for unknown username", "username", cmd.Username)
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to look up user", "username", cmd.Username, "error", err)
		return nil, err
	}

	if err := u.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "username", cmd.Username)
		return nil, errors.NewInvalidCredentialsError()
	}

	session, err := user.NewSession(u.ID(), biztime.NowUTC().Add(uc.sessionExpiry))
	if err != nil {
		uc.logger.Errorw("failed to create session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	if err := uc.sessionRepo.Create(session); err != nil {
		uc.logger.Errorw("failed to store session", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to store session")
	}

	uc.logger.Infow("login successful", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		SessionID: session.ID,
		UserID:    u.ID(),
		Username:  u.Username(),
		IsAdmin:   u.IsAdmin(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}

	if len(cmd.Password) == 0 {
		return errors.NewValidationError("password is required")
	}

	return nil
}
