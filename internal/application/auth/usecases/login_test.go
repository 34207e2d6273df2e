package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func seedUser(t *testing.T, username string, isAdmin bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(1, username, "deadbeef", "cafe", isAdmin, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("valid credentials create a session", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return seedUser(t, username, true), nil
			},
		}
		var stored *user.Session
		sessionRepo := &mockSessionRepository{
			CreateFunc: func(s *user.Session) error {
				stored = s
				return nil
			},
		}

		uc := NewLoginUseCase(userRepo, sessionRepo, &mockHasher{}, time.Hour, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "secret"})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID, result.SessionID)
		assert.NotEmpty(t, result.SessionID)
		assert.Equal(t, uint(1), result.UserID)
		assert.True(t, result.IsAdmin)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), result.ExpiresAt, time.Minute)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}
		knownRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return seedUser(t, username, false), nil
			},
		}
		badHasher := &mockHasher{
			VerifyFunc: func(password, hash, salt string) error {
				return fmt.Errorf("mismatch")
			},
		}

		uc1 := NewLoginUseCase(unknownRepo, &mockSessionRepository{}, &mockHasher{}, time.Hour, &mockLogger{})
		_, err1 := uc1.Execute(context.Background(), LoginCommand{Username: "ghost", Password: "x"})

		uc2 := NewLoginUseCase(knownRepo, &mockSessionRepository{}, badHasher, time.Hour, &mockLogger{})
		_, err2 := uc2.Execute(context.Background(), LoginCommand{Username: "admin", Password: "wrong"})

		require.Error(t, err1)
		require.Error(t, err2)
		assert.Equal(t, err1.Error(), err2.Error())

		authErr := errors.GetAuthError(err1)
		require.NotNil(t, authErr)
		assert.Equal(t, errors.ErrorTypeInvalidCredentials, authErr.Type)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockSessionRepository{}, &mockHasher{}, time.Hour, &mockLogger{})

		_, err := uc.Execute(context.Background(), LoginCommand{Password: "x"})
		assert.True(t, errors.IsValidationError(err))

		_, err = uc.Execute(context.Background(), LoginCommand{Username: "admin"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return nil, errors.NewStorageError("database is gone")
			},
		}

		uc := NewLoginUseCase(userRepo, &mockSessionRepository{}, &mockHasher{}, time.Hour, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCommand{Username: "admin", Password: "x"})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeStorage, appErr.Type)
	})
}

func TestLogoutUseCase_Execute(t *testing.T) {
	t.Run("deletes the session", func(t *testing.T) {
		deleted := ""
		sessionRepo := &mockSessionRepository{
			DeleteFunc: func(sessionID string) error {
				deleted = sessionID
				return nil
			},
		}

		uc := NewLogoutUseCase(sessionRepo, &mockLogger{})
		require.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "abc"}))
		assert.Equal(t, "abc", deleted)
	})

	t.Run("idempotent without a session", func(t *testing.T) {
		uc := NewLogoutUseCase(&mockSessionRepository{}, &mockLogger{})
		assert.NoError(t, uc.Execute(context.Background(), LogoutCommand{}))
		assert.NoError(t, uc.Execute(context.Background(), LogoutCommand{SessionID: "never-existed"}))
	})
}

func TestCurrentUserUseCase_Execute(t *testing.T) {
	t.Run("resolves the session owner", func(t *testing.T) {
		session, err := user.NewSession(1, time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)

		sessionRepo := &mockSessionRepository{
			GetByIDFunc: func(sessionID string) (*user.Session, error) {
				return session, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return seedUser(t, "admin", true), nil
			},
		}

		uc := NewCurrentUserUseCase(userRepo, sessionRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CurrentUserQuery{SessionID: session.ID})

		require.NoError(t, err)
		assert.Equal(t, "admin", result.Username)
		assert.True(t, result.IsAdmin)
	})

	t.Run("no session means not authenticated", func(t *testing.T) {
		uc := NewCurrentUserUseCase(&mockUserRepository{}, &mockSessionRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CurrentUserQuery{})
		authErr := errors.GetAuthError(err)
		require.NotNil(t, authErr)
		assert.Equal(t, errors.ErrorTypeNotAuthenticated, authErr.Type)

		_, err = uc.Execute(context.Background(), CurrentUserQuery{SessionID: "expired-or-unknown"})
		authErr = errors.GetAuthError(err)
		require.NotNil(t, authErr)
		assert.Equal(t, errors.ErrorTypeNotAuthenticated, authErr.Type)
	})

	t.Run("session for deleted user is dead", func(t *testing.T) {
		session, err := user.NewSession(9, time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)

		sessionRepo := &mockSessionRepository{
			GetByIDFunc: func(sessionID string) (*user.Session, error) {
				return session, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}

		uc := NewCurrentUserUseCase(userRepo, sessionRepo, &mockLogger{})
		_, err = uc.Execute(context.Background(), CurrentUserQuery{SessionID: session.ID})

		authErr := errors.GetAuthError(err)
		require.NotNil(t, authErr)
		assert.Equal(t, errors.ErrorTypeNotAuthenticated, authErr.Type)
	})
}
