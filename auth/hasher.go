// Package auth holds the credential primitives of the service: the bcrypt
// password hasher, the JWT issuer/verifier and the bearer-token middleware.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for plaintexts bcrypt cannot digest
// (more than 72 bytes). Callers should report it as a validation failure.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// Hasher turns plaintext passwords into salted bcrypt digests and checks
// plaintexts against stored digests.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given work factor.
// A cost of 0 selects bcrypt.DefaultCost (10).
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the work factor used for new digests.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash produces a digest with a fresh random salt, so hashing the same
// plaintext twice yields two different strings.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. The comparison runs in
// constant time; malformed digests simply do not match.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
