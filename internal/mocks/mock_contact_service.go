package mocks

import (
	"context"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// MockContactService implements domain.ContactService interface for testing
type MockContactService struct {
	CreateFunc            func(ctx context.Context, ownerID uint, contact *domain.Contact) error
	GetFunc               func(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error)
	ListFunc              func(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error)
	UpdateFunc            func(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error)
	DeleteFunc            func(ctx context.Context, ownerID, contactID uint) error
	UpcomingBirthdaysFunc func(ctx context.Context, ownerID uint) ([]domain.Contact, error)
}

// NewMockContactService creates a new MockContactService with default behaviors
func NewMockContactService() *MockContactService {
	return &MockContactService{}
}

// Create stores a new contact for the owner
func (m *MockContactService) Create(ctx context.Context, ownerID uint, contact *domain.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, contact)
	}
	contact.ID = 1
	contact.UserID = ownerID
	return nil
}

// Get fetches one of the owner's contacts
func (m *MockContactService) Get(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID, contactID)
	}
	return nil, domain.ErrContactNotFound
}

// List fetches the owner's contacts with optional filters
func (m *MockContactService) List(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID, filter)
	}
	return nil, nil
}

// Update applies a partial mutation to one of the owner's contacts
func (m *MockContactService) Update(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ownerID, contactID, update)
	}
	return nil, domain.ErrContactNotFound
}

// Delete removes one of the owner's contacts
func (m *MockContactService) Delete(ctx context.Context, ownerID, contactID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, contactID)
	}
	return domain.ErrContactNotFound
}

// UpcomingBirthdays lists contacts with birthdays in the coming week
func (m *MockContactService) UpcomingBirthdays(ctx context.Context, ownerID uint) ([]domain.Contact, error) {
	if m.UpcomingBirthdaysFunc != nil {
		return m.UpcomingBirthdaysFunc(ctx, ownerID)
	}
	return nil, nil
}
