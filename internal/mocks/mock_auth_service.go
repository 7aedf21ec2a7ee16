package mocks

import (
	"context"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, username, email, password, baseURL string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ConfirmEmailFunc         func(ctx context.Context, token string) (bool, error)
	RequestConfirmationFunc  func(ctx context.Context, email, baseURL string) (bool, error)
	RequestPasswordResetFunc func(ctx context.Context, email, baseURL string) error
	ResetPasswordFunc        func(ctx context.Context, token, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates a new account
func (m *MockAuthService) Register(ctx context.Context, username, email, password, baseURL string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password, baseURL)
	}
	return &domain.User{
		ID:        1,
		Username:  username,
		Email:     email,
		Role:      domain.RoleUser,
		Confirmed: false,
	}, nil
}

// Login authenticates credentials and issues an access token
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:        &domain.User{ID: 1, Email: email, Role: domain.RoleUser, Confirmed: true},
		AccessToken: "access_token_" + email,
		TokenType:   "bearer",
		ExpiresIn:   3600,
	}, nil
}

// ConfirmEmail confirms an account via an action token
func (m *MockAuthService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, token)
	}
	return false, nil
}

// RequestConfirmation re-sends the confirmation email
func (m *MockAuthService) RequestConfirmation(ctx context.Context, email, baseURL string) (bool, error) {
	if m.RequestConfirmationFunc != nil {
		return m.RequestConfirmationFunc(ctx, email, baseURL)
	}
	return false, nil
}

// RequestPasswordReset sends a reset link
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email, baseURL)
	}
	return nil
}

// ResetPassword replaces the password via an action token
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}
