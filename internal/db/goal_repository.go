package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint, areaID uint, timeframe string, status string) ([]models.Goal, error) {
	query := repo.database.Model(&models.Goal{}).Where("user_id = ?", userID)
	query = goalAreaLinks.linkedTo(query, areaID)
	if timeframe != "" {
		query = query.Where("timeframe = ?", timeframe)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	goals := make([]models.Goal, 0)
	if err := query.Preload("Areas", orderAreas).Order("id ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindByID(goalID uint) (models.Goal, bool, error) {
	goal := models.Goal{}
	result := repo.database.Preload("Areas", orderAreas).Where("id = ?", goalID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	return goal, result.RowsAffected > 0, nil
}

func (repo *GoalRepository) Create(goal *models.Goal, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(goal).Error; err != nil {
			return err
		}
		if err := goalAreaLinks.replace(tx, goal.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(goal).Association("Areas").Find(&goal.Areas)
	})
}

// Save writes every column of goal; areaIDs replaces its area links unless nil.
func (repo *GoalRepository) Save(goal *models.Goal, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(goal).Error; err != nil {
			return err
		}
		if areaIDs == nil {
			return nil
		}
		if err := goalAreaLinks.replace(tx, goal.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(goal).Association("Areas").Find(&goal.Areas)
	})
}

func (repo *GoalRepository) Delete(goalID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := goalAreaLinks.clear(tx, goalID); err != nil {
			return err
		}
		return tx.Delete(&models.Goal{}, goalID).Error
	})
}

func orderAreas(query *gorm.DB) *gorm.DB {
	return query.Order("life_areas.id ASC")
}
