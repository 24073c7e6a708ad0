// Package hash provides the bcrypt implementation of the password hasher port.
package hash

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/userdesk/user-api/internal/core/ports"
)

// BcryptHasher hashes credentials with bcrypt. Each call salts independently,
// so two hashes of the same input differ; verification goes through Matches.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost, clamped to bcrypt's
// valid range. Pass 0 for the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Matches(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
