package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBContact{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, repo domain.UserRepository, username, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed_password",
		Avatar:       "https://www.gravatar.com/avatar/abc",
		Role:         domain.RoleUser,
		Confirmed:    false,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// RFC 5321 allows addresses up to 254 characters, the column must hold them.
func TestUserRepositoryImpl_MaxLengthEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	local := strings.Repeat("a", 254-len("@example.com"))
	email := local + "@example.com"
	if len(email) != 254 {
		t.Fatalf("test address is %d characters, want 254", len(email))
	}

	created := createTestUser(t, repo, "longmail", email)

	found, err := repo.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("id = %d, want %d", found.ID, created.ID)
	}
	if found.Email != email {
		t.Errorf("email round-trip truncated to %d characters", len(found.Email))
	}
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice", "alice@example.com")
	if user.ID == 0 {
		t.Fatal("expected Create to assign an ID")
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", byID.Email, "alice@example.com")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("id = %d, want %d", byEmail.ID, user.ID)
	}

	byUsername, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if byUsername.ID != user.ID {
		t.Errorf("id = %d, want %d", byUsername.ID, user.ID)
	}
}

func TestUserRepositoryImpl_FindNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByID() error = %v, want %v", err, domain.ErrUserNotFound)
	}
	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByEmail() error = %v, want %v", err, domain.ErrUserNotFound)
	}
	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByUsername() error = %v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, repo, "alice", "alice@example.com")

	dup := &domain.User{
		Username:     "alice2",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Role:         domain.RoleUser,
	}
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("expected unique constraint violation for duplicate email")
	}
}

func TestUserRepositoryImpl_ConfirmEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice", "alice@example.com")

	if err := repo.ConfirmEmail(ctx, user.Email); err != nil {
		t.Fatalf("ConfirmEmail() error = %v", err)
	}

	confirmed, err := repo.FindByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if !confirmed.Confirmed {
		t.Error("expected user to be confirmed")
	}

	// Confirming again is a no-op, not an error.
	if err := repo.ConfirmEmail(ctx, user.Email); err != nil {
		t.Errorf("ConfirmEmail() second call error = %v", err)
	}

	if err := repo.ConfirmEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("ConfirmEmail() error = %v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestUserRepositoryImpl_UpdateAvatar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice", "alice@example.com")

	updated, err := repo.UpdateAvatar(ctx, user.Email, "https://cdn.example.com/avatars/1/new")
	if err != nil {
		t.Fatalf("UpdateAvatar() error = %v", err)
	}
	if updated.Avatar != "https://cdn.example.com/avatars/1/new" {
		t.Errorf("avatar = %q, want updated URL", updated.Avatar)
	}

	if _, err := repo.UpdateAvatar(ctx, "nobody@example.com", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("UpdateAvatar() error = %v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestUserRepositoryImpl_UpdatePassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice", "alice@example.com")

	if err := repo.UpdatePassword(ctx, user.Email, "hashed_newpassword"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	updated, err := repo.FindByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if updated.PasswordHash != "hashed_newpassword" {
		t.Errorf("password hash = %q, want %q", updated.PasswordHash, "hashed_newpassword")
	}

	if err := repo.UpdatePassword(ctx, "nobody@example.com", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("UpdatePassword() error = %v, want %v", err, domain.ErrUserNotFound)
	}
}
