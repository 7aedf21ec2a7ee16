package mocks

import (
	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(email, role string) (string, error)
	GenerateActionTokenFunc func(email string) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.AccessClaims, error)
	ValidateActionTokenFunc func(token string) (*domain.ActionClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken issues an access token
func (m *MockTokenService) GenerateAccessToken(email, role string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(email, role)
	}
	return "access_token_" + email, nil
}

// GenerateActionToken issues an action token
func (m *MockTokenService) GenerateActionToken(email string) (string, error) {
	if m.GenerateActionTokenFunc != nil {
		return m.GenerateActionTokenFunc(email)
	}
	return "action_token_" + email, nil
}

// ValidateAccessToken verifies an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.AccessClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// ValidateActionToken verifies an action token
func (m *MockTokenService) ValidateActionToken(token string) (*domain.ActionClaims, error) {
	if m.ValidateActionTokenFunc != nil {
		return m.ValidateActionTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
