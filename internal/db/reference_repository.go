package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReferenceRepository struct {
	database *gorm.DB
}

func NewReferenceRepository(database *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{database: database}
}

func (repo *ReferenceRepository) ListByUser(userID uint, areaID uint, referenceType string) ([]models.Reference, error) {
	query := repo.database.Model(&models.Reference{}).Where("user_id = ?", userID)
	query = referenceAreaLinks.linkedTo(query, areaID)
	if referenceType != "" {
		query = query.Where("type = ?", referenceType)
	}

	references := make([]models.Reference, 0)
	if err := query.Preload("Areas", orderAreas).Order("id ASC").Find(&references).Error; err != nil {
		return nil, err
	}
	return references, nil
}

func (repo *ReferenceRepository) FindByID(referenceID uint) (models.Reference, bool, error) {
	reference := models.Reference{}
	result := repo.database.Preload("Areas", orderAreas).Where("id = ?", referenceID).Limit(1).Find(&reference)
	if result.Error != nil {
		return models.Reference{}, false, result.Error
	}
	return reference, result.RowsAffected > 0, nil
}

func (repo *ReferenceRepository) Create(reference *models.Reference, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(reference).Error; err != nil {
			return err
		}
		if err := referenceAreaLinks.replace(tx, reference.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(reference).Association("Areas").Find(&reference.Areas)
	})
}

func (repo *ReferenceRepository) Save(reference *models.Reference, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(reference).Error; err != nil {
			return err
		}
		if areaIDs == nil {
			return nil
		}
		if err := referenceAreaLinks.replace(tx, reference.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(reference).Association("Areas").Find(&reference.Areas)
	})
}

func (repo *ReferenceRepository) Delete(referenceID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := referenceAreaLinks.clear(tx, referenceID); err != nil {
			return err
		}
		return tx.Delete(&models.Reference{}, referenceID).Error
	})
}
