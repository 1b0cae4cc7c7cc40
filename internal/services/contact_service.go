package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var ErrContactBirthdayMissing = errors.New("contact has no birthday set")

type ContactRepository interface {
	ListByUser(userID uint, areaID uint) ([]models.Contact, error)
	FindByID(contactID uint) (models.Contact, bool, error)
	Create(contact *models.Contact, areaIDs []uint) error
	Save(contact *models.Contact, areaIDs []uint) error
	Delete(contactID uint) error
}

type ContactChanges struct {
	Name     *string      `json:"name"`
	Role     *string      `json:"role"`
	Phone    *string      `json:"phone"`
	Email    *string      `json:"email"`
	Address  *string      `json:"address"`
	Birthday *models.Date `json:"birthday"`
	Notes    *string      `json:"notes"`
	AreaIDs  []uint       `json:"area_ids"`
}

type ContactService struct {
	contacts ContactRepository
	areas    AreaLookup
}

func NewContactService(contacts ContactRepository, areas AreaLookup) *ContactService {
	return &ContactService{contacts: contacts, areas: areas}
}

func (service *ContactService) List(userID uint, areaID uint) ([]models.Contact, error) {
	return service.contacts.ListByUser(userID, areaID)
}

func (service *ContactService) Get(userID uint, contactID uint) (models.Contact, error) {
	contact, found, err := service.contacts.FindByID(contactID)
	return authorize(contact, found, err, userID)
}

func (service *ContactService) Create(userID uint, changes ContactChanges) (models.Contact, error) {
	if changes.Name == nil {
		return models.Contact{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	contact := models.Contact{UserID: userID}
	areaIDs, err := service.apply(&contact, changes)
	if err != nil {
		return models.Contact{}, err
	}
	if areaIDs == nil {
		areaIDs = []uint{}
	}
	if err := service.contacts.Create(&contact, areaIDs); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (service *ContactService) Update(userID uint, contactID uint, changes ContactChanges) (models.Contact, error) {
	contact, err := service.Get(userID, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	areaIDs, err := service.apply(&contact, changes)
	if err != nil {
		return models.Contact{}, err
	}
	if err := service.contacts.Save(&contact, areaIDs); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (service *ContactService) Delete(userID uint, contactID uint) error {
	if _, err := service.Get(userID, contactID); err != nil {
		return err
	}
	return service.contacts.Delete(contactID)
}

func (service *ContactService) Birthday(userID uint, contactID uint, today models.Date) (BirthdayInfo, error) {
	contact, err := service.Get(userID, contactID)
	if err != nil {
		return BirthdayInfo{}, err
	}
	if contact.Birthday == nil || contact.Birthday.IsZero() {
		return BirthdayInfo{}, ErrContactBirthdayMissing
	}
	return BirthdayInfoFor(*contact.Birthday, today), nil
}

func (service *ContactService) apply(contact *models.Contact, changes ContactChanges) ([]uint, error) {
	if changes.Name != nil {
		name, err := requiredText("name", *changes.Name)
		if err != nil {
			return nil, err
		}
		contact.Name = name
	}
	applyText(&contact.Role, changes.Role)
	applyText(&contact.Phone, changes.Phone)
	applyText(&contact.Email, changes.Email)
	applyText(&contact.Address, changes.Address)
	applyText(&contact.Notes, changes.Notes)
	if changes.Birthday != nil {
		contact.Birthday = changes.Birthday
	}

	if changes.AreaIDs == nil {
		return nil, nil
	}
	return resolveAreaIDs(service.areas, changes.AreaIDs)
}
