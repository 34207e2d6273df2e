package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	DefaultScryptN      = 16384
	DefaultScryptR      = 8
	DefaultScryptP      = 1
	DefaultScryptKeyLen = 64

	saltLength = 16
)

// ScryptPasswordHasher derives password hashes with scrypt using a per-user
// salt stored alongside the hash. Hashes and salts are hex encoded.
type ScryptPasswordHasher struct {
	n      int
	r      int
	p      int
	keyLen int
}

func NewScryptPasswordHasher(n, r, p, keyLen int) *ScryptPasswordHasher {
	if n <= 1 {
		n = DefaultScryptN
	}
	if r <= 0 {
		r = DefaultScryptR
	}
	if p <= 0 {
		p = DefaultScryptP
	}
	if keyLen <= 0 {
		keyLen = DefaultScryptKeyLen
	}
	return &ScryptPasswordHasher{n: n, r: r, p: p, keyLen: keyLen}
}

func (h *ScryptPasswordHasher) Hash(password, salt string) (string, error) {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("invalid salt encoding: %w", err)
	}

	key, err := scrypt.Key([]byte(password), saltBytes, h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive password hash: %w", err)
	}

	return hex.EncodeToString(key), nil
}

func (h *ScryptPasswordHasher) Verify(password, hash, salt string) error {
	expected, err := hex.DecodeString(hash)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}

	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}

	key, err := scrypt.Key([]byte(password), saltBytes, h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return fmt.Errorf("password verification failed")
	}

	// Constant-time comparison; the caller gets the same generic error
	// regardless of the actual cause.
	if subtle.ConstantTimeCompare(expected, key) != 1 {
		return fmt.Errorf("password verification failed")
	}

	return nil
}

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
