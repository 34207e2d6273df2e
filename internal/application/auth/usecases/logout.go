package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute ends the session. Logging out twice, or with a session that never
// existed, succeeds the same way.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return nil
	}

	if err := uc.sessionRepo.Delete(cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return err
	}

	uc.logger.Infow("logout completed")
	return nil
}
