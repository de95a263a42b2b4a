package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher backs the actor credential port with bcrypt. The
// login flow only verifies; Hash exists for seeding and future credential
// management.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher builds a hasher with the configured work factor.
// A cost outside bcrypt's supported range falls back to the library
// default rather than failing startup.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks a plaintext password against its stored hash. The returned
// error carries no cause, so a wrong password and a corrupt stored hash
// read identically to the caller.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return errors.New("password verification failed")
	}
	return nil
}
