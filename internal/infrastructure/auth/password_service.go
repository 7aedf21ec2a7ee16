package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// PasswordServiceImpl implements domain.PasswordService using bcrypt
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash implements domain.PasswordService. The salt is embedded in the
// returned hash, nothing is stored separately.
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. A malformed stored hash
// verifies as false, never as an error the caller could mistake for success.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
