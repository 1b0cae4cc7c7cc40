package services

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type EntryRepository interface {
	ListByUser(userID uint, areaID uint, from models.Date, to models.Date) ([]models.Entry, error)
	FindByID(entryID uint) (models.Entry, bool, error)
	Create(entry *models.Entry) error
	Save(entry *models.Entry) error
	Delete(entryID uint) error
}

type EntryChanges struct {
	AreaID    *uint        `json:"area_id"`
	Title     *string      `json:"title"`
	Content   *string      `json:"content"`
	EntryDate *models.Date `json:"entry_date"`
}

type EntryService struct {
	entries EntryRepository
	areas   AreaLookup
}

func NewEntryService(entries EntryRepository, areas AreaLookup) *EntryService {
	return &EntryService{entries: entries, areas: areas}
}

func (service *EntryService) List(userID uint, areaID uint, from models.Date, to models.Date) ([]models.Entry, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}
	return service.entries.ListByUser(userID, areaID, from, to)
}

func (service *EntryService) Get(userID uint, entryID uint) (models.Entry, error) {
	entry, found, err := service.entries.FindByID(entryID)
	return authorize(entry, found, err, userID)
}

// Create files a new entry; a missing entry_date means today.
func (service *EntryService) Create(userID uint, changes EntryChanges, today models.Date) (models.Entry, error) {
	if changes.AreaID == nil {
		return models.Entry{}, fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if changes.Content == nil {
		return models.Entry{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	entry := models.Entry{UserID: userID, EntryDate: today}
	if err := service.apply(&entry, changes); err != nil {
		return models.Entry{}, err
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (service *EntryService) Update(userID uint, entryID uint, changes EntryChanges) (models.Entry, error) {
	entry, err := service.Get(userID, entryID)
	if err != nil {
		return models.Entry{}, err
	}
	if err := service.apply(&entry, changes); err != nil {
		return models.Entry{}, err
	}
	if err := service.entries.Save(&entry); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (service *EntryService) Delete(userID uint, entryID uint) error {
	if _, err := service.Get(userID, entryID); err != nil {
		return err
	}
	return service.entries.Delete(entryID)
}

func (service *EntryService) apply(entry *models.Entry, changes EntryChanges) error {
	if changes.AreaID != nil {
		if err := resolveAreaID(service.areas, *changes.AreaID); err != nil {
			return err
		}
		entry.AreaID = *changes.AreaID
		entry.Area = models.LifeArea{}
	}
	applyText(&entry.Title, changes.Title)
	if changes.Content != nil {
		content, err := requiredText("content", *changes.Content)
		if err != nil {
			return err
		}
		entry.Content = content
	}
	if changes.EntryDate != nil && !changes.EntryDate.IsZero() {
		entry.EntryDate = *changes.EntryDate
	}
	return nil
}
