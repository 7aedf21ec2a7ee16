package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/middleware"
)

// UserHandlers handles requests about the authenticated user's own account
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// Me returns the authenticated user's public snapshot. Within the cache TTL
// this is served straight from the snapshot the authenticator resolved.
func (h *UserHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAvatar uploads a new avatar image and stores its public URL
func (h *UserHandlers) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read avatar file"})
		return
	}
	defer file.Close()

	updated, err := h.userSvc.UpdateAvatar(c.Request.Context(), user.Email, file, fileHeader.Size)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}
