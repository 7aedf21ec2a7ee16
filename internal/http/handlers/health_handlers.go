package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandlers reports service health
type HealthHandlers struct {
	db *gorm.DB
}

// NewHealthHandlers creates new health handlers
func NewHealthHandlers(db *gorm.DB) *HealthHandlers {
	return &HealthHandlers{db: db}
}

// Healthchecker verifies database connectivity
func (h *HealthHandlers) Healthchecker(c *gin.Context) {
	var result int
	err := h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&result).Error
	if err != nil || result != 1 {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "error connecting to the database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Contacts API!"})
}
