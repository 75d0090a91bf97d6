package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored password.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the given plaintext password.
// The salt is generated per call and embedded in the returned hash value, so
// no separate salt storage is needed.
//
// Hashing only fails on a system-level error (e.g. the random source being
// unavailable); such a failure must be treated as fatal by the caller, never
// as a non-match.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt hash.
// Any comparison failure (including a malformed stored hash) is a non-match.
func VerifyPassword(plaintext, hashValue string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashValue), []byte(plaintext)) == nil
}
