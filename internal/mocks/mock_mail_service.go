package mocks

// MockMailService implements domain.MailService interface for testing
type MockMailService struct {
	SendConfirmationFunc  func(email, username, baseURL string) error
	SendPasswordResetFunc func(email, baseURL string) error
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendConfirmation dispatches a confirmation email
func (m *MockMailService) SendConfirmation(email, username, baseURL string) error {
	if m.SendConfirmationFunc != nil {
		return m.SendConfirmationFunc(email, username, baseURL)
	}
	return nil
}

// SendPasswordReset dispatches a password reset email
func (m *MockMailService) SendPasswordReset(email, baseURL string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(email, baseURL)
	}
	return nil
}
