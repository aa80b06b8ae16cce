package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

// HashPassword derives a salted bcrypt digest from the plaintext. The salt
// makes identical plaintexts produce different digests.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches digest. It fails closed:
// empty inputs, malformed digests, and internal bcrypt errors all yield
// false, never an error. bcrypt's comparison runs in time independent of
// where a mismatch occurs.
func VerifyPassword(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
