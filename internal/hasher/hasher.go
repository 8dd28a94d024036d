package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements interfaces.PasswordHasher using bcrypt.
// The salt is embedded in the digest, so Hash is non-deterministic while
// Check remains a pure function of its inputs.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost.
// A cost of 0 (or anything below bcrypt's minimum) falls back to the
// bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt digest from the plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Check reports whether the plaintext matches the digest. Malformed or
// foreign digest formats simply fail the comparison.
func (h *BcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
