package services

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type ReferenceRepository interface {
	ListByUser(userID uint, areaID uint, referenceType string) ([]models.Reference, error)
	FindByID(referenceID uint) (models.Reference, bool, error)
	Create(reference *models.Reference, areaIDs []uint) error
	Save(reference *models.Reference, areaIDs []uint) error
	Delete(referenceID uint) error
}

type ReferenceChanges struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	URL      *string `json:"url"`
	Content  *string `json:"content"`
	LawLevel *string `json:"law_level"`
	Tags     *string `json:"tags"`
	Notes    *string `json:"notes"`
	AreaIDs  []uint  `json:"area_ids"`
}

type ReferenceService struct {
	references ReferenceRepository
	areas      AreaLookup
}

func NewReferenceService(references ReferenceRepository, areas AreaLookup) *ReferenceService {
	return &ReferenceService{references: references, areas: areas}
}

func (service *ReferenceService) List(userID uint, areaID uint, referenceType string) ([]models.Reference, error) {
	return service.references.ListByUser(userID, areaID, referenceType)
}

func (service *ReferenceService) Get(userID uint, referenceID uint) (models.Reference, error) {
	reference, found, err := service.references.FindByID(referenceID)
	return authorize(reference, found, err, userID)
}

func (service *ReferenceService) Create(userID uint, changes ReferenceChanges) (models.Reference, error) {
	if changes.Title == nil {
		return models.Reference{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if changes.Type == nil {
		return models.Reference{}, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}

	reference := models.Reference{UserID: userID}
	areaIDs, err := service.apply(&reference, changes)
	if err != nil {
		return models.Reference{}, err
	}
	if areaIDs == nil {
		areaIDs = []uint{}
	}
	if err := service.references.Create(&reference, areaIDs); err != nil {
		return models.Reference{}, err
	}
	return reference, nil
}

func (service *ReferenceService) Update(userID uint, referenceID uint, changes ReferenceChanges) (models.Reference, error) {
	reference, err := service.Get(userID, referenceID)
	if err != nil {
		return models.Reference{}, err
	}
	areaIDs, err := service.apply(&reference, changes)
	if err != nil {
		return models.Reference{}, err
	}
	if err := service.references.Save(&reference, areaIDs); err != nil {
		return models.Reference{}, err
	}
	return reference, nil
}

func (service *ReferenceService) Delete(userID uint, referenceID uint) error {
	if _, err := service.Get(userID, referenceID); err != nil {
		return err
	}
	return service.references.Delete(referenceID)
}

func (service *ReferenceService) apply(reference *models.Reference, changes ReferenceChanges) ([]uint, error) {
	if changes.Title != nil {
		title, err := requiredText("title", *changes.Title)
		if err != nil {
			return nil, err
		}
		reference.Title = title
	}
	if changes.Type != nil {
		if err := oneOf("type", *changes.Type, models.ReferenceTypeWebsite, models.ReferenceTypeScripture, models.ReferenceTypeLaw, models.ReferenceTypeNote); err != nil {
			return nil, err
		}
		reference.Type = *changes.Type
	}
	applyText(&reference.URL, changes.URL)
	applyText(&reference.Content, changes.Content)
	applyText(&reference.Tags, changes.Tags)
	applyText(&reference.Notes, changes.Notes)
	if changes.LawLevel != nil {
		if *changes.LawLevel != "" {
			if err := oneOf("law_level", *changes.LawLevel, models.LawLevelFederal, models.LawLevelState, models.LawLevelLocal); err != nil {
				return nil, err
			}
		}
		reference.LawLevel = *changes.LawLevel
	}

	if err := validateReferenceShape(*reference); err != nil {
		return nil, err
	}
	if changes.AreaIDs == nil {
		return nil, nil
	}
	return resolveAreaIDs(service.areas, changes.AreaIDs)
}

// validateReferenceShape checks the field each reference type depends on.
func validateReferenceShape(reference models.Reference) error {
	switch reference.Type {
	case models.ReferenceTypeWebsite:
		if reference.URL == "" {
			return fmt.Errorf("%w: url is required for website references", ErrInvalidInput)
		}
	case models.ReferenceTypeLaw:
		if reference.LawLevel == "" {
			return fmt.Errorf("%w: law_level is required for law references", ErrInvalidInput)
		}
	case models.ReferenceTypeScripture:
		if reference.Content == "" {
			return fmt.Errorf("%w: book/chapter/verse content is required for scripture references", ErrInvalidInput)
		}
	}
	return nil
}
