package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/middleware"
)

// Calendar dates on the wire use this layout.
const dateLayout = "2006-01-02"

// ContactHandlers handles contact directory HTTP requests
type ContactHandlers struct {
	contactSvc domain.ContactService
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService) *ContactHandlers {
	return &ContactHandlers{contactSvc: contactSvc}
}

// ContactCreateRequest represents contact creation payload
type ContactCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Birthday       string `json:"birthday" binding:"required"`
	AdditionalData string `json:"additional_data"`
}

// ContactUpdateRequest represents a partial contact mutation; absent fields
// leave the stored values untouched
type ContactUpdateRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Birthday       *string `json:"birthday"`
	AdditionalData *string `json:"additional_data"`
}

// ContactResponse is the contact wire representation
type ContactResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Birthday       string `json:"birthday"`
	AdditionalData string `json:"additional_data,omitempty"`
}

func toContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:             contact.ID,
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Birthday:       contact.Birthday.Format(dateLayout),
		AdditionalData: contact.AdditionalData,
	}
}

func toContactResponses(contacts []domain.Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, toContactResponse(&contacts[i]))
	}
	return responses
}

func currentOwner(c *gin.Context) (uint, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
		return 0, false
	}
	return user.ID, true
}

func contactID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid contact id"})
		return 0, false
	}
	return uint(id), true
}

// List handles listing contacts with optional name/email filters
func (h *ContactHandlers) List(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	filter := domain.ContactFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}

	contacts, err := h.contactSvc.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, toContactResponses(contacts))
}

// Get handles fetching a single contact by id
func (h *ContactHandlers) Get(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactSvc.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		if err == domain.ErrContactNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get contact"})
		return
	}

	c.JSON(http.StatusOK, toContactResponse(contact))
}

// Create handles contact creation
func (h *ContactHandlers) Create(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	var req ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "birthday must be formatted as YYYY-MM-DD"})
		return
	}

	contact := &domain.Contact{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Birthday:       birthday,
		AdditionalData: req.AdditionalData,
	}

	if err := h.contactSvc.Create(c.Request.Context(), ownerID, contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, toContactResponse(contact))
}

// Update handles partial contact updates
func (h *ContactHandlers) Update(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	update := domain.ContactUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		AdditionalData: req.AdditionalData,
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(dateLayout, *req.Birthday)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "birthday must be formatted as YYYY-MM-DD"})
			return
		}
		update.Birthday = &birthday
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), ownerID, id, update)
	if err != nil {
		if err == domain.ErrContactNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete handles contact deletion
func (h *ContactHandlers) Delete(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), ownerID, id); err != nil {
		if err == domain.ErrContactNotFound {
			c.JSON(http.StatusNotFound, gin.H{"detail": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Contact deleted successfully"})
}

// UpcomingBirthdays handles listing contacts with birthdays in the next week
func (h *ContactHandlers) UpcomingBirthdays(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	contacts, err := h.contactSvc.UpcomingBirthdays(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list upcoming birthdays"})
		return
	}

	c.JSON(http.StatusOK, toContactResponses(contacts))
}
