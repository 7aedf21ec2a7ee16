package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/storage"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailSvc     domain.MailService
	tokenTTL    int64
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailSvc domain.MailService,
	tokenTTLSeconds int64,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailSvc:     mailSvc,
		tokenTTL:    tokenTTLSeconds,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password, baseURL string) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Avatar:       storage.GravatarURL(email),
		Role:         domain.RoleUser,
		Confirmed:    false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Dispatch is decoupled from the registration outcome: a mail failure
	// is logged and the user can re-request confirmation later.
	go func(email, username, baseURL string) {
		if err := s.mailSvc.SendConfirmation(email, username, baseURL); err != nil {
			log.Printf("EMAIL_DISPATCH_FAILED: kind=confirmation recipient=%s error=%v", email, err)
		}
	}(user.Email, user.Username, baseURL)

	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown user and wrong password are deliberately indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, domain.ErrEmailNotConfirmed
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.tokenTTL,
	}, nil
}

// ConfirmEmail implements domain.AuthService. The returned bool reports
// whether the user was already confirmed, which callers treat as success.
func (s *AuthServiceImpl) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	claims, err := s.tokenSvc.ValidateActionToken(token)
	if err != nil {
		return false, err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, domain.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	if err := s.userRepo.ConfirmEmail(ctx, user.Email); err != nil {
		return false, fmt.Errorf("failed to confirm email: %w", err)
	}
	return false, nil
}

// RequestConfirmation implements domain.AuthService. An unknown address is
// reported identically to a successful dispatch.
func (s *AuthServiceImpl) RequestConfirmation(ctx context.Context, email, baseURL string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Confirmed {
		return true, nil
	}

	go func(email, username, baseURL string) {
		if err := s.mailSvc.SendConfirmation(email, username, baseURL); err != nil {
			log.Printf("EMAIL_DISPATCH_FAILED: kind=confirmation recipient=%s error=%v", email, err)
		}
	}(user.Email, user.Username, baseURL)

	return false, nil
}

// RequestPasswordReset implements domain.AuthService
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email, baseURL string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	go func(email, baseURL string) {
		if err := s.mailSvc.SendPasswordReset(email, baseURL); err != nil {
			log.Printf("EMAIL_DISPATCH_FAILED: kind=reset recipient=%s error=%v", email, err)
		}
	}(user.Email, baseURL)

	return nil
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenSvc.ValidateActionToken(token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.Email, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
