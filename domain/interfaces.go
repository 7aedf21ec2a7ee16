package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, url string) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// ContactRepository defines contact data access operations, always owner-scoped
type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	FindByID(ctx context.Context, ownerID, contactID uint) (*Contact, error)
	FindAll(ctx context.Context, ownerID uint, filter ContactFilter) ([]Contact, error)
	Update(ctx context.Context, ownerID, contactID uint, update ContactUpdate) (*Contact, error)
	Delete(ctx context.Context, ownerID, contactID uint) error
}

// SessionCache maps raw bearer tokens to cached user snapshots with a TTL
type SessionCache interface {
	Get(ctx context.Context, token string) (*UserSnapshot, error)
	Put(ctx context.Context, token string, snapshot *UserSnapshot) error
}

// AuthService defines account lifecycle and credential business logic
type AuthService interface {
	Register(ctx context.Context, username, email, password, baseURL string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ConfirmEmail(ctx context.Context, token string) (bool, error)
	RequestConfirmation(ctx context.Context, email, baseURL string) (bool, error)
	RequestPasswordReset(ctx context.Context, email, baseURL string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ContactService defines contact directory business logic
type ContactService interface {
	Create(ctx context.Context, ownerID uint, contact *Contact) error
	Get(ctx context.Context, ownerID, contactID uint) (*Contact, error)
	List(ctx context.Context, ownerID uint, filter ContactFilter) ([]Contact, error)
	Update(ctx context.Context, ownerID, contactID uint, update ContactUpdate) (*Contact, error)
	Delete(ctx context.Context, ownerID, contactID uint) error
	UpcomingBirthdays(ctx context.Context, ownerID uint) ([]Contact, error)
}

// UserService defines operations on the authenticated user's own account
type UserService interface {
	UpdateAvatar(ctx context.Context, email string, file io.Reader, size int64) (*User, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService signs and verifies the two token kinds issued by the service.
// Access tokens authenticate API calls; action tokens authorize one-time
// email-confirmation and password-reset actions.
type TokenService interface {
	GenerateAccessToken(email, role string) (string, error)
	GenerateActionToken(email string) (string, error)
	ValidateAccessToken(token string) (*AccessClaims, error)
	ValidateActionToken(token string) (*ActionClaims, error)
}

// MailService defines outbound email dispatch operations
type MailService interface {
	SendConfirmation(email, username, baseURL string) error
	SendPasswordReset(email, baseURL string) error
}

// AvatarStorage uploads avatar images to object storage and returns a public URL
type AvatarStorage interface {
	Upload(ctx context.Context, file io.Reader, size int64, owner string) (string, error)
}

// AccessClaims are the verified contents of an access token
type AccessClaims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ActionClaims are the verified contents of an action token. They carry no
// role on purpose: a consumer holding ActionClaims cannot mistake them for
// an API credential.
type ActionClaims struct {
	Subject   string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
