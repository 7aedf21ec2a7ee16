package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// AuthMW wraps the token service, session cache and user repository for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	cache    domain.SessionCache
	userRepo domain.UserRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, cache domain.SessionCache, userRepo domain.UserRepository) *AuthMW {
	return &AuthMW{
		tokenSvc: tokenSvc,
		cache:    cache,
		userRepo: userRepo,
	}
}

// WithJWT returns the bearer-token authentication middleware
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.cache, mw.userRepo)
}
