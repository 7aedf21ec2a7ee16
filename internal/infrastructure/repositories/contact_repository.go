package repositories

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// ContactRepositoryImpl implements domain.ContactRepository using GORM.
// Every query filters on user_id, a contact is never visible outside its owner.
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// DBContact represents the database model for Contact (with GORM tags)
type DBContact struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	Phone          string    `gorm:"not null"`
	Birthday       time.Time `gorm:"not null"`
	AdditionalData string    `gorm:"type:text"`
	UserID         *uint     `gorm:"index"`
	User           *DBUser   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DBContact) TableName() string {
	return "contacts"
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// Create implements domain.ContactRepository
func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *domain.Contact) error {
	dbContact := r.domainToDB(contact)
	if err := r.db.WithContext(ctx).Create(dbContact).Error; err != nil {
		return err
	}
	contact.ID = dbContact.ID
	return nil
}

// FindByID implements domain.ContactRepository. A contact belonging to a
// different owner behaves exactly like an absent one.
func (r *ContactRepositoryImpl) FindByID(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error) {
	var dbContact DBContact
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, ownerID).
		First(&dbContact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbContact), nil
}

// FindAll implements domain.ContactRepository. Name and email filters are
// case-insensitive substring matches, combined with AND when both are given.
func (r *ContactRepositoryImpl) FindAll(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}

	var dbContacts []DBContact
	if err := query.Find(&dbContacts).Error; err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(dbContacts))
	for i := range dbContacts {
		contacts = append(contacts, *r.dbToDomain(&dbContacts[i]))
	}
	return contacts, nil
}

// Update implements domain.ContactRepository. Only non-nil fields of the
// update are written, everything else keeps its stored value.
func (r *ContactRepositoryImpl) Update(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error) {
	var dbContact DBContact
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, ownerID).
		First(&dbContact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		dbContact.Name = *update.Name
	}
	if update.Email != nil {
		dbContact.Email = *update.Email
	}
	if update.Phone != nil {
		dbContact.Phone = *update.Phone
	}
	if update.Birthday != nil {
		dbContact.Birthday = *update.Birthday
	}
	if update.AdditionalData != nil {
		dbContact.AdditionalData = *update.AdditionalData
	}

	if err := r.db.WithContext(ctx).Save(&dbContact).Error; err != nil {
		return nil, err
	}
	return r.dbToDomain(&dbContact), nil
}

// Delete implements domain.ContactRepository. Deleting an absent or foreign
// contact reports not found, repeated deletes are not treated as success.
func (r *ContactRepositoryImpl) Delete(ctx context.Context, ownerID, contactID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, ownerID).
		Delete(&DBContact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// domainToDB converts domain contact to database contact
func (r *ContactRepositoryImpl) domainToDB(contact *domain.Contact) *DBContact {
	dbContact := &DBContact{
		ID:             contact.ID,
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Birthday:       contact.Birthday,
		AdditionalData: contact.AdditionalData,
	}
	if contact.UserID != 0 {
		ownerID := contact.UserID
		dbContact.UserID = &ownerID
	}
	return dbContact
}

// dbToDomain converts database contact to domain contact
func (r *ContactRepositoryImpl) dbToDomain(dbContact *DBContact) *domain.Contact {
	contact := &domain.Contact{
		ID:             dbContact.ID,
		Name:           dbContact.Name,
		Email:          dbContact.Email,
		Phone:          dbContact.Phone,
		Birthday:       dbContact.Birthday,
		AdditionalData: dbContact.AdditionalData,
	}
	if dbContact.UserID != nil {
		contact.UserID = *dbContact.UserID
	}
	return contact
}
