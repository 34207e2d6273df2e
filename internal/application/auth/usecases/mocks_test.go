package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ExistsFunc        func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockSessionRepository struct {
	CreateFunc         func(session *user.Session) error
	GetByIDFunc        func(sessionID string) (*user.Session, error)
	DeleteFunc         func(sessionID string) error
	DeleteByUserIDFunc func(userID uint) error
	DeleteExpiredFunc  func() error
}

func (m *mockSessionRepository) Create(session *user.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(session)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(sessionID string) (*user.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Delete(sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(userID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired() error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc()
	}
	return nil
}

type mockHasher struct {
	HashFunc   func(password, salt string) (string, error)
	VerifyFunc func(password, hash, salt string) error
}

func (m *mockHasher) Hash(password, salt string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password, salt)
	}
	return password, nil
}

func (m *mockHasher) Verify(password, hash, salt string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash, salt)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
