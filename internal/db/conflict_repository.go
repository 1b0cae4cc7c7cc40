package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
)

type ConflictRepository struct {
	database *gorm.DB
}

func NewConflictRepository(database *gorm.DB) *ConflictRepository {
	return &ConflictRepository{database: database}
}

func (repo *ConflictRepository) ListByUser(userID uint) ([]models.ConflictTopic, error) {
	topics := make([]models.ConflictTopic, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (repo *ConflictRepository) FindByID(topicID uint) (models.ConflictTopic, bool, error) {
	topic := models.ConflictTopic{}
	result := repo.database.Where("id = ?", topicID).Limit(1).Find(&topic)
	if result.Error != nil {
		return models.ConflictTopic{}, false, result.Error
	}
	return topic, result.RowsAffected > 0, nil
}

// CreateWithinLimit inserts topic unless the user already has limit topics.
// The count and insert share a transaction.
func (repo *ConflictRepository) CreateWithinLimit(topic *models.ConflictTopic, limit int) (bool, error) {
	created := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ConflictTopic{}).Where("user_id = ?", topic.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(limit) {
			return nil
		}
		if err := tx.Create(topic).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (repo *ConflictRepository) Save(topic *models.ConflictTopic) error {
	return repo.database.Save(topic).Error
}

func (repo *ConflictRepository) Delete(topicID uint) error {
	return repo.database.Delete(&models.ConflictTopic{}, topicID).Error
}
