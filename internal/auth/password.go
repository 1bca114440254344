package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes; longer client secrets would silently collide.
const maxSecretBytes = 72

var (
	ErrEmptySecret   = errors.New("client secret is empty")
	ErrSecretTooLong = errors.New("client secret exceeds 72 bytes")
)

// HashSecret produces the AUTH_CLIENTS hash for an API client secret.
func HashSecret(secret string, cost int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if len(secret) > maxSecretBytes {
		return "", ErrSecretTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifySecret reports whether secret matches a configured client hash. Malformed
// hashes never match.
func VerifySecret(hashed, secret string) bool {
	if secret == "" || len(secret) > maxSecretBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
