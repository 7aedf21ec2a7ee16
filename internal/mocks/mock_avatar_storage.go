package mocks

import (
	"context"
	"io"
)

// MockAvatarStorage implements domain.AvatarStorage interface for testing
type MockAvatarStorage struct {
	UploadFunc func(ctx context.Context, file io.Reader, size int64, owner string) (string, error)
}

// NewMockAvatarStorage creates a new MockAvatarStorage with default behaviors
func NewMockAvatarStorage() *MockAvatarStorage {
	return &MockAvatarStorage{}
}

// Upload stores an avatar image and returns its public URL
func (m *MockAvatarStorage) Upload(ctx context.Context, file io.Reader, size int64, owner string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file, size, owner)
	}
	return "https://storage.example.com/avatars/" + owner + "/mock", nil
}
