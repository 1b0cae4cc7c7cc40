package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
)

type HealthRepository struct {
	database *gorm.DB
}

func NewHealthRepository(database *gorm.DB) *HealthRepository {
	return &HealthRepository{database: database}
}

func (repo *HealthRepository) ListByUser(userID uint, catalogType string) ([]models.HealthCatalogItem, error) {
	query := repo.database.Where("user_id = ?", userID)
	if catalogType != "" {
		query = query.Where("catalog_type = ?", catalogType)
	}

	items := make([]models.HealthCatalogItem, 0)
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *HealthRepository) FindByID(itemID uint) (models.HealthCatalogItem, bool, error) {
	item := models.HealthCatalogItem{}
	result := repo.database.Where("id = ?", itemID).Limit(1).Find(&item)
	if result.Error != nil {
		return models.HealthCatalogItem{}, false, result.Error
	}
	return item, result.RowsAffected > 0, nil
}

func (repo *HealthRepository) Create(item *models.HealthCatalogItem) error {
	return repo.database.Create(item).Error
}

func (repo *HealthRepository) Save(item *models.HealthCatalogItem) error {
	return repo.database.Save(item).Error
}

func (repo *HealthRepository) Delete(itemID uint) error {
	return repo.database.Delete(&models.HealthCatalogItem{}, itemID).Error
}
