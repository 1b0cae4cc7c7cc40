package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

// ListByUser returns entries newest first. Zero from/to dates leave that end
// of the range open; both ends are inclusive.
func (repo *EntryRepository) ListByUser(userID uint, areaID uint, from models.Date, to models.Date) ([]models.Entry, error) {
	query := repo.database.Model(&models.Entry{}).Where("user_id = ?", userID)
	if areaID != 0 {
		query = query.Where("area_id = ?", areaID)
	}
	if !from.IsZero() {
		query = query.Where("entry_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("entry_date <= ?", to)
	}

	entries := make([]models.Entry, 0)
	if err := query.Preload("Area").Order("entry_date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) FindByID(entryID uint) (models.Entry, bool, error) {
	entry := models.Entry{}
	result := repo.database.Preload("Area").Where("id = ?", entryID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.Entry{}, false, result.Error
	}
	return entry, result.RowsAffected > 0, nil
}

func (repo *EntryRepository) Create(entry *models.Entry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(entry).Error; err != nil {
			return err
		}
		return tx.Preload("Area").First(entry, entry.ID).Error
	})
}

func (repo *EntryRepository) Save(entry *models.Entry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(entry).Error; err != nil {
			return err
		}
		return tx.Preload("Area").First(entry, entry.ID).Error
	})
}

func (repo *EntryRepository) Delete(entryID uint) error {
	return repo.database.Delete(&models.Entry{}, entryID).Error
}
