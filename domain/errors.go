package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect login or password")
	ErrEmailNotConfirmed  = errors.New("email confirmation failed")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("user with this username already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("cache miss")
)

// Contact errors
var (
	ErrContactNotFound = errors.New("contact not found")
)
