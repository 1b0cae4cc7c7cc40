package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrRecordForbidden = errors.New("not authorized")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidArea     = fmt.Errorf("%w: unknown life area", ErrInvalidInput)
	ErrInvalidContact  = fmt.Errorf("%w: unknown contact", ErrInvalidInput)
)

type ownedRecord interface {
	OwnerID() uint
}

// authorize turns a repository lookup into the record userID may act on.
func authorize[T ownedRecord](record T, found bool, err error, userID uint) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, ErrRecordNotFound
	}
	if record.OwnerID() != userID {
		return zero, ErrRecordForbidden
	}
	return record, nil
}

type AreaLookup interface {
	FindByIDs(areaIDs []uint) ([]models.LifeArea, error)
}

// resolveAreaIDs deduplicates areaIDs and checks every one names a seeded
// life area.
func resolveAreaIDs(areas AreaLookup, areaIDs []uint) ([]uint, error) {
	unique := slices.Clone(areaIDs)
	slices.Sort(unique)
	unique = slices.Compact(unique)
	if len(unique) == 0 {
		return unique, nil
	}

	found, err := areas.FindByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(found) == len(unique) {
		return unique, nil
	}

	known := make(map[uint]bool, len(found))
	for _, area := range found {
		known[area.ID] = true
	}
	for _, areaID := range unique {
		if !known[areaID] {
			return nil, fmt.Errorf("%w: life area with id %d not found", ErrInvalidArea, areaID)
		}
	}
	return unique, nil
}

func resolveAreaID(areas AreaLookup, areaID uint) error {
	if areaID == 0 {
		return fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	_, err := resolveAreaIDs(areas, []uint{areaID})
	return err
}

type ContactLookup interface {
	FindByID(contactID uint) (models.Contact, bool, error)
}

// verifyContact accepts a nil reference or a contact that userID owns.
func verifyContact(contacts ContactLookup, userID uint, contactID *uint) error {
	if contactID == nil {
		return nil
	}
	contact, found, err := contacts.FindByID(*contactID)
	if err != nil {
		return err
	}
	if !found || contact.UserID != userID {
		return fmt.Errorf("%w: contact with id %d not found", ErrInvalidContact, *contactID)
	}
	return nil
}

func requiredText(field string, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return trimmed, nil
}

func oneOf(field string, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w: %s must be one of %s", ErrInvalidInput, field, strings.Join(allowed, ", "))
}

func applyText(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}
