package services

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type HealthRepository interface {
	ListByUser(userID uint, catalogType string) ([]models.HealthCatalogItem, error)
	FindByID(itemID uint) (models.HealthCatalogItem, bool, error)
	Create(item *models.HealthCatalogItem) error
	Save(item *models.HealthCatalogItem) error
	Delete(itemID uint) error
}

type HealthItemChanges struct {
	CatalogType          *string `json:"catalog_type"`
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	DoctorSpecialty      *string `json:"doctor_specialty"`
	DoctorPhone          *string `json:"doctor_phone"`
	FoodCategory         *string `json:"food_category"`
	SupplementDosage     *string `json:"supplement_dosage"`
	MedicationDosage     *string `json:"medication_dosage"`
	MedicationFrequency  *string `json:"medication_frequency"`
	MotionDuration       *string `json:"motion_duration"`
	FrequencyDescription *string `json:"frequency_description"`
	Notes                *string `json:"notes"`
}

var healthCatalogTypes = []string{
	models.HealthCatalogDoctor,
	models.HealthCatalogFood,
	models.HealthCatalogSupplement,
	models.HealthCatalogMedication,
	models.HealthCatalogMotion,
}

type HealthService struct {
	items HealthRepository
}

func NewHealthService(items HealthRepository) *HealthService {
	return &HealthService{items: items}
}

func (service *HealthService) List(userID uint, catalogType string) ([]models.HealthCatalogItem, error) {
	if catalogType != "" {
		if err := oneOf("catalog_type", catalogType, healthCatalogTypes...); err != nil {
			return nil, err
		}
	}
	return service.items.ListByUser(userID, catalogType)
}

func (service *HealthService) Get(userID uint, itemID uint) (models.HealthCatalogItem, error) {
	item, found, err := service.items.FindByID(itemID)
	return authorize(item, found, err, userID)
}

func (service *HealthService) Create(userID uint, changes HealthItemChanges) (models.HealthCatalogItem, error) {
	if changes.CatalogType == nil {
		return models.HealthCatalogItem{}, fmt.Errorf("%w: catalog_type is required", ErrInvalidInput)
	}
	if changes.Name == nil {
		return models.HealthCatalogItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	item := models.HealthCatalogItem{UserID: userID}
	if err := service.apply(&item, changes); err != nil {
		return models.HealthCatalogItem{}, err
	}
	if err := service.items.Create(&item); err != nil {
		return models.HealthCatalogItem{}, err
	}
	return item, nil
}

func (service *HealthService) Update(userID uint, itemID uint, changes HealthItemChanges) (models.HealthCatalogItem, error) {
	item, err := service.Get(userID, itemID)
	if err != nil {
		return models.HealthCatalogItem{}, err
	}
	if err := service.apply(&item, changes); err != nil {
		return models.HealthCatalogItem{}, err
	}
	if err := service.items.Save(&item); err != nil {
		return models.HealthCatalogItem{}, err
	}
	return item, nil
}

func (service *HealthService) Delete(userID uint, itemID uint) error {
	if _, err := service.Get(userID, itemID); err != nil {
		return err
	}
	return service.items.Delete(itemID)
}

func (service *HealthService) apply(item *models.HealthCatalogItem, changes HealthItemChanges) error {
	if changes.CatalogType != nil {
		if err := oneOf("catalog_type", *changes.CatalogType, healthCatalogTypes...); err != nil {
			return err
		}
		item.CatalogType = *changes.CatalogType
	}
	if changes.Name != nil {
		name, err := requiredText("name", *changes.Name)
		if err != nil {
			return err
		}
		item.Name = name
	}
	applyText(&item.Description, changes.Description)
	applyText(&item.DoctorSpecialty, changes.DoctorSpecialty)
	applyText(&item.DoctorPhone, changes.DoctorPhone)
	applyText(&item.FoodCategory, changes.FoodCategory)
	applyText(&item.SupplementDosage, changes.SupplementDosage)
	applyText(&item.MedicationDosage, changes.MedicationDosage)
	applyText(&item.MedicationFrequency, changes.MedicationFrequency)
	applyText(&item.MotionDuration, changes.MotionDuration)
	applyText(&item.FrequencyDescription, changes.FrequencyDescription)
	applyText(&item.Notes, changes.Notes)
	return nil
}
