package seeds

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	infraRepo "helpdesk/internal/infrastructure/repository"
	apperrors "helpdesk/internal/shared/errors"
)

// SeedUser describes one account to provision.
type SeedUser struct {
	Username string
	Password string
	IsAdmin  bool
}

// DefaultUsers are the accounts provisioned by the seed-users command.
// Account self-registration does not exist, so this is the only way users
// come into being.
var DefaultUsers = []SeedUser{
	{Username: "admin", Password: "admin", IsAdmin: true},
	{Username: "alice", Password: "alice123", IsAdmin: false},
	{Username: "bob", Password: "bob123", IsAdmin: false},
}

// SeedUsers provisions the given accounts, hashing each password with a
// fresh salt. Accounts whose username already exists are skipped.
func SeedUsers(ctx context.Context, db *gorm.DB, hasher *auth.ScryptPasswordHasher, users []SeedUser) error {
	repo := infraRepo.NewUserRepository(db)

	for _, su := range users {
		salt, err := auth.GenerateSalt()
		if err != nil {
			return fmt.Errorf("failed to generate salt for %q: %w", su.Username, err)
		}

		hash, err := hasher.Hash(su.Password, salt)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", su.Username, err)
		}

		u, err := user.NewUser(su.Username, hash, salt, su.IsAdmin)
		if err != nil {
			return fmt.Errorf("invalid seed user %q: %w", su.Username, err)
		}

		if err := repo.Create(ctx, u); err != nil {
			if apperrors.IsConflictError(err) {
				continue
			}
			return fmt.Errorf("failed to create user %q: %w", su.Username, err)
		}
	}

	return nil
}
