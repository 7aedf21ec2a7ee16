package mocks

import (
	"context"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockSessionCache implements domain.SessionCache interface for testing
type MockSessionCache struct {
	GetFunc func(ctx context.Context, token string) (*domain.UserSnapshot, error)
	PutFunc func(ctx context.Context, token string, snapshot *domain.UserSnapshot) error
}

// NewMockSessionCache creates a new MockSessionCache with default behaviors
func NewMockSessionCache() *MockSessionCache {
	return &MockSessionCache{}
}

// Get looks up a cached snapshot by bearer token
func (m *MockSessionCache) Get(ctx context.Context, token string) (*domain.UserSnapshot, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	return nil, domain.ErrCacheMiss
}

// Put stores a snapshot under a bearer token
func (m *MockSessionCache) Put(ctx context.Context, token string, snapshot *domain.UserSnapshot) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, token, snapshot)
	}
	return nil
}
