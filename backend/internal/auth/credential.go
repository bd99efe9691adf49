package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credential decides whether a presented password matches a stored secret.
// It is the single seam where password comparison happens.
type Credential interface {
	Verify(stored, presented string) bool
}

// PlaintextCredential compares passwords as exact strings.
type PlaintextCredential struct{}

// Verify reports whether presented equals stored.
func (PlaintextCredential) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// BcryptCredential treats the stored secret as a bcrypt hash.
type BcryptCredential struct{}

// Verify reports whether presented hashes to stored.
func (BcryptCredential) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// HashPassword returns a bcrypt hash of password for use with BcryptCredential.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}
