package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// AuthHandlers handles authentication and account lifecycle HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	baseURL string
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, baseURL string) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		baseURL: baseURL,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login credentials, accepted as JSON or form data
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RequestEmailRequest represents a confirmation re-send request
type RequestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordConfirmRequest represents the reset confirmation payload
type ResetPasswordConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UserResponse is the public user representation
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      user.Role,
		Confirmed: user.Confirmed,
		CreatedAt: user.CreatedAt,
	}
}

func (h *AuthHandlers) requestBaseURL(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password, h.requestBaseURL(c))
	if err != nil {
		switch err {
		case domain.ErrEmailTaken, domain.ErrUsernameTaken:
			c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials, domain.ErrEmailNotConfirmed:
			c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"token_type":   result.TokenType,
		"expires_in":   result.ExpiresIn,
	})
}

// ConfirmedEmail handles email confirmation via an action token
func (h *AuthHandlers) ConfirmedEmail(c *gin.Context) {
	token := c.Param("token")

	alreadyConfirmed, err := h.authSvc.ConfirmEmail(c.Request.Context(), token)
	if err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenMalformed:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "incorrect token"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "verification error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "confirmation failed"})
		}
		return
	}

	if alreadyConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": "Your email has been confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// RequestEmail handles re-sending the confirmation email
func (h *AuthHandlers) RequestEmail(c *gin.Context) {
	var req RequestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	alreadyConfirmed, err := h.authSvc.RequestConfirmation(c.Request.Context(), req.Email, h.requestBaseURL(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "request failed"})
		return
	}

	if alreadyConfirmed {
		c.JSON(http.StatusOK, gin.H{"message": "Your email has been confirmed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check your email for confirmation"})
}

// ResetPassword handles a password reset request
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email, h.requestBaseURL(c)); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check your email for password reset instructions"})
}

// ResetPasswordConfirm handles the reset confirmation with a new password
func (h *AuthHandlers) ResetPasswordConfirm(c *gin.Context) {
	var req ResetPasswordConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired, domain.ErrTokenMalformed:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "incorrect token"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid token or user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "password reset failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password successfully reset"})
}
