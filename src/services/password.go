package services

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInput is the longest input bcrypt reads; longer passwords are pre-hashed
const bcryptMaxInput = 72

// PasswordHasher hashes and verifies admin passwords with bcrypt. The output
// embeds algorithm version, cost and salt, and is safe to store directly.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher. Costs outside bcrypt's range fall back to 10.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 10
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a fresh salted hash of plaintext
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prepare(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash never matches.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prepare(plaintext)) == nil
}

// prepare keeps passwords up to 72 bytes as-is so hashes made elsewhere
// with plain bcrypt still verify. Longer ones are reduced to a SHA-256
// digest instead of being rejected or silently truncated.
//
// Migration caveat: bcrypt tools that truncate at 72 bytes stored hashes of
// the first 72 bytes only. An imported admin whose password is longer than
// that will no longer verify and must be reset with "thesis-api admin create".
func prepare(plaintext string) []byte {
	if len(plaintext) <= bcryptMaxInput {
		return []byte(plaintext)
	}
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
