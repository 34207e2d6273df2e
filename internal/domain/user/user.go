package user

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

// User holds a provisioned account. Accounts are created by an out-of-band
// provisioning step (the seed-users migration command); nothing in the HTTP
// surface creates or mutates them.
type User struct {
	id           uint
	username     string
	passwordHash string
	salt         string
	isAdmin      bool
	createdAt    time.Time
}

func NewUser(
	username string,
	passwordHash string,
	salt string,
	isAdmin bool,
) (*User, error) {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt is required")
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		salt:         salt,
		isAdmin:      isAdmin,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	salt string,
	isAdmin bool,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		salt:         salt,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Salt() string {
	return u.salt
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) Role() authorization.UserRole {
	if u.isAdmin {
		return authorization.RoleAdmin
	}
	return authorization.RoleUser
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword recomputes the KDF over the candidate password with the
// stored salt and compares against the stored hash in constant time.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" || u.salt == "" {
		return fmt.Errorf("user has no password set")
	}

	if err := hasher.Verify(plainPassword, u.passwordHash, u.salt); err != nil {
		return fmt.Errorf("invalid password")
	}

	return nil
}
