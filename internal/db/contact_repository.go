package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContactRepository struct {
	database *gorm.DB
}

func NewContactRepository(database *gorm.DB) *ContactRepository {
	return &ContactRepository{database: database}
}

func (repo *ContactRepository) ListByUser(userID uint, areaID uint) ([]models.Contact, error) {
	query := repo.database.Model(&models.Contact{}).Where("user_id = ?", userID)
	query = contactAreaLinks.linkedTo(query, areaID)

	contacts := make([]models.Contact, 0)
	if err := query.Preload("Areas", orderAreas).Order("name ASC, id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (repo *ContactRepository) FindByID(contactID uint) (models.Contact, bool, error) {
	contact := models.Contact{}
	result := repo.database.Preload("Areas", orderAreas).Where("id = ?", contactID).Limit(1).Find(&contact)
	if result.Error != nil {
		return models.Contact{}, false, result.Error
	}
	return contact, result.RowsAffected > 0, nil
}

func (repo *ContactRepository) Create(contact *models.Contact, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(contact).Error; err != nil {
			return err
		}
		if err := contactAreaLinks.replace(tx, contact.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(contact).Association("Areas").Find(&contact.Areas)
	})
}

func (repo *ContactRepository) Save(contact *models.Contact, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(contact).Error; err != nil {
			return err
		}
		if areaIDs == nil {
			return nil
		}
		if err := contactAreaLinks.replace(tx, contact.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(contact).Association("Areas").Find(&contact.Areas)
	})
}

// Delete removes the contact; goals and tasks pointing at it keep their
// rows with contact_id cleared.
func (repo *ContactRepository) Delete(contactID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Goal{}).Where("contact_id = ?", contactID).Update("contact_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("contact_id = ?", contactID).Update("contact_id", nil).Error; err != nil {
			return err
		}
		if err := contactAreaLinks.clear(tx, contactID); err != nil {
			return err
		}
		return tx.Delete(&models.Contact{}, contactID).Error
	})
}
