package services

import (
	"context"
	"time"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
)

// Window for the upcoming birthdays query, inclusive on both ends.
const birthdayWindowDays = 7

// ContactServiceImpl implements domain.ContactService
type ContactServiceImpl struct {
	contactRepo domain.ContactRepository
	now         func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(contactRepo domain.ContactRepository) domain.ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		now:         time.Now,
	}
}

// Create implements domain.ContactService. The owner comes from the
// authenticated identity, never from the payload.
func (s *ContactServiceImpl) Create(ctx context.Context, ownerID uint, contact *domain.Contact) error {
	contact.UserID = ownerID
	return s.contactRepo.Create(ctx, contact)
}

// Get implements domain.ContactService
func (s *ContactServiceImpl) Get(ctx context.Context, ownerID, contactID uint) (*domain.Contact, error) {
	return s.contactRepo.FindByID(ctx, ownerID, contactID)
}

// List implements domain.ContactService
func (s *ContactServiceImpl) List(ctx context.Context, ownerID uint, filter domain.ContactFilter) ([]domain.Contact, error) {
	return s.contactRepo.FindAll(ctx, ownerID, filter)
}

// Update implements domain.ContactService
func (s *ContactServiceImpl) Update(ctx context.Context, ownerID, contactID uint, update domain.ContactUpdate) (*domain.Contact, error) {
	return s.contactRepo.Update(ctx, ownerID, contactID, update)
}

// Delete implements domain.ContactService
func (s *ContactServiceImpl) Delete(ctx context.Context, ownerID, contactID uint) error {
	return s.contactRepo.Delete(ctx, ownerID, contactID)
}

// UpcomingBirthdays implements domain.ContactService. A contact is included
// when its birthday, projected onto the current year (or the next one if it
// already passed), lands within the next seven days.
func (s *ContactServiceImpl) UpcomingBirthdays(ctx context.Context, ownerID uint) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.FindAll(ctx, ownerID, domain.ContactFilter{})
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.now())
	windowEnd := today.AddDate(0, 0, birthdayWindowDays)

	upcoming := make([]domain.Contact, 0)
	for _, contact := range contacts {
		next := nextBirthday(contact.Birthday, today)
		if !next.Before(today) && !next.After(windowEnd) {
			upcoming = append(upcoming, contact)
		}
	}
	return upcoming, nil
}

// nextBirthday projects a birthday onto the current year, rolling forward
// one year when the projected date already passed. Feb 29 birthdays clamp
// to Feb 28 in non-leap years.
func nextBirthday(birthday, today time.Time) time.Time {
	projected := projectToYear(birthday, today.Year())
	if projected.Before(today) {
		projected = projectToYear(birthday, today.Year()+1)
	}
	return projected
}

func projectToYear(birthday time.Time, year int) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
