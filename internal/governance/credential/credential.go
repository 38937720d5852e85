// Package credential hashes and verifies account passwords.
//
// bcrypt embeds a unique salt in every digest and keeps comparison
// constant-time, so verification needs nothing beyond the stored digest.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier hashes and verifies plaintext passwords at a fixed cost.
type Verifier struct {
	cost int
}

// NewVerifier creates a verifier with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to the default.
func NewVerifier(cost int) Verifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Verifier{cost: cost}
}

// Hash derives a salted one-way digest from plaintext.
func (v Verifier) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
// Malformed digests verify false; Verify never returns an error.
func (v Verifier) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
