package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

const taskPriorityOrder = `CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 WHEN 'low' THEN 2 ELSE 3 END`

func (repo *TaskRepository) ListByUser(userID uint, areaID uint, status string) ([]models.Task, error) {
	query := repo.database.Model(&models.Task{}).Where("user_id = ?", userID)
	if areaID != 0 {
		query = query.Where("area_id = ?", areaID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	tasks := make([]models.Task, 0)
	if err := query.
		Preload("Area").
		Order(taskPriorityOrder).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, bool, error) {
	task := models.Task{}
	result := repo.database.Preload("Area").Where("id = ?", taskID).Limit(1).Find(&task)
	if result.Error != nil {
		return models.Task{}, false, result.Error
	}
	return task, result.RowsAffected > 0, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}
		return tx.Preload("Area").First(task, task.ID).Error
	})
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		return tx.Preload("Area").First(task, task.ID).Error
	})
}

func (repo *TaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}
