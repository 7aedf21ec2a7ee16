package mocks

import (
	"context"
	"io"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	UpdateAvatarFunc func(ctx context.Context, email string, file io.Reader, size int64) (*domain.User, error)
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// UpdateAvatar uploads a new avatar and returns the updated user
func (m *MockUserService) UpdateAvatar(ctx context.Context, email string, file io.Reader, size int64) (*domain.User, error) {
	if m.UpdateAvatarFunc != nil {
		return m.UpdateAvatarFunc(ctx, email, file, size)
	}
	return &domain.User{
		ID:        1,
		Username:  "alice",
		Email:     email,
		Avatar:    "https://storage.example.com/avatars/alice/mock",
		Role:      domain.RoleUser,
		Confirmed: true,
	}, nil
}
