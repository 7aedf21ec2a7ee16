package mocks

import (
	"context"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	CreateFunc   func(ctx context.Context, contact *domain.Contact) error
	FindByIDFunc func(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error)
	FindAllFunc  func(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error)
	UpdateFunc   func(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error)
	DeleteFunc   func(ctx context.Context, ownerID, contactID uint) error
}

// NewMockContactRepository creates a new MockContactRepository with default behaviors
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// Create creates a new contact
func (m *MockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	return nil
}

// FindByID finds an owned contact by ID
func (m *MockContactRepository) FindByID(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ownerID, contactID)
	}
	return nil, domain.ErrContactNotFound
}

// FindAll lists owned contacts matching a filter
func (m *MockContactRepository) FindAll(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, ownerID, filter)
	}
	return nil, nil
}

// Update applies a partial mutation to an owned contact
func (m *MockContactRepository) Update(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ownerID, contactID, update)
	}
	return nil, domain.ErrContactNotFound
}

// Delete removes an owned contact
func (m *MockContactRepository) Delete(ctx context.Context, ownerID, contactID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, contactID)
	}
	return domain.ErrContactNotFound
}
