package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	apperrors "helpdesk/internal/shared/errors"
)

// Claims carries the authorization level of an estimation token.
type Claims struct {
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AccessToken is a signed short-lived token for the estimation service.
type AccessToken struct {
	Token     string
	Role      authorization.UserRole
	ExpiresIn int64
}

// TokenService issues and verifies the short-lived HS256 tokens the
// estimation service accepts. Tokens are self-contained and are never
// stored server-side.
type TokenService struct {
	secret        []byte
	expirySeconds int
}

func NewTokenService(secret string, expirySeconds int) *TokenService {
	if expirySeconds <= 0 {
		expirySeconds = 60
	}
	return &TokenService{
		secret:        []byte(secret),
		expirySeconds: expirySeconds,
	}
}

func (s *TokenService) Generate(role authorization.UserRole) (*AccessToken, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirySeconds) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &AccessToken{
		Token:     signed,
		Role:      role,
		ExpiresIn: int64(s.expirySeconds),
	}, nil
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError("access token")
		}
		return nil, apperrors.NewTokenInvalidError("access token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewTokenInvalidError("access token")
	}

	if !claims.Role.IsValid() {
		return nil, apperrors.NewTokenInvalidError("access token")
	}

	return claims, nil
}

// ExpirySeconds returns the configured token lifetime in seconds.
func (s *TokenService) ExpirySeconds() int {
	return s.expirySeconds
}
