package domain

import "time"

// User represents an account in the system
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Avatar       string
	Role         string
	Confirmed    bool
	CreatedAt    time.Time
}

// Snapshot projects the user's public fields for session caching
func (u *User) Snapshot() *UserSnapshot {
	return &UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
}

// UserSnapshot is the public projection of a user cached against a bearer token
type UserSnapshot struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role"`
}

// Contact represents a contact record owned by exactly one user
type Contact struct {
	ID             uint
	Name           string
	Email          string
	Phone          string
	Birthday       time.Time
	AdditionalData string
	UserID         uint
}

// ContactUpdate carries a partial contact mutation; nil fields are left untouched
type ContactUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Birthday       *time.Time
	AdditionalData *string
}

// ContactFilter narrows contact listings; empty strings match everything
type ContactFilter struct {
	Name  string
	Email string
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User        *User
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// Roles assignable to users
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
