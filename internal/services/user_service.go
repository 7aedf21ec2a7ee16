package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo      domain.UserRepository
	avatarStorage domain.AvatarStorage
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, avatarStorage domain.AvatarStorage) domain.UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		avatarStorage: avatarStorage,
	}
}

// UpdateAvatar implements domain.UserService. Unlike the best-effort avatar
// at registration, an upload failure here is reported to the caller.
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, email string, file io.Reader, size int64) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	url, err := s.avatarStorage.Upload(ctx, file, size, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	updated, err := s.userRepo.UpdateAvatar(ctx, user.Email, url)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return updated, nil
}
