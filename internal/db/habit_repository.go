package db

import (
	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint, areaID uint, habitType string) ([]models.Habit, error) {
	query := repo.database.Model(&models.Habit{}).Where("user_id = ?", userID)
	query = habitAreaLinks.linkedTo(query, areaID)
	if habitType != "" {
		query = query.Where("habit_type = ?", habitType)
	}

	habits := make([]models.Habit, 0)
	if err := query.Preload("Areas", orderAreas).Order("id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.Preload("Areas", orderAreas).Where("id = ?", habitID).Limit(1).Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	return habit, result.RowsAffected > 0, nil
}

func (repo *HabitRepository) Create(habit *models.Habit, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(habit).Error; err != nil {
			return err
		}
		if err := habitAreaLinks.replace(tx, habit.ID, areaIDs); err != nil {
			return err
		}
		return tx.Model(habit).Association("Areas").Find(&habit.Areas)
	})
}

// Save writes the editable habit fields. Streak columns are owned by
// ApplyCheckin and are left alone.
func (repo *HabitRepository) Save(habit *models.Habit, areaIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Habit{}).Where("id = ?", habit.ID).Updates(map[string]any{
			"name":                  habit.Name,
			"description":           habit.Description,
			"habit_type":            habit.HabitType,
			"frequency_description": habit.FrequencyDescription,
			"updated_at":            habit.UpdatedAt,
		}).Error; err != nil {
			return err
		}
		if areaIDs != nil {
			if err := habitAreaLinks.replace(tx, habit.ID, areaIDs); err != nil {
				return err
			}
		}
		return tx.Preload("Areas", orderAreas).First(habit, habit.ID).Error
	})
}

func (repo *HabitRepository) Delete(habitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitCheckin{}).Error; err != nil {
			return err
		}
		if err := habitAreaLinks.clear(tx, habitID); err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, habitID).Error
	})
}

// ApplyCheckin stores the streak computed from previous and appends
// checkin, atomically. It reports false without writing anything when the
// stored streak or last check-in date no longer matches previous.
func (repo *HabitRepository) ApplyCheckin(previous models.Habit, next models.Habit, checkin *models.HabitCheckin) (bool, error) {
	applied := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Habit{}).
			Where("id = ? AND current_streak = ? AND longest_streak = ?", previous.ID, previous.CurrentStreak, previous.LongestStreak)
		if previous.LastCheckinDate == nil {
			query = query.Where("last_checkin_date IS NULL")
		} else {
			query = query.Where("last_checkin_date = ?", *previous.LastCheckinDate)
		}
		result := query.Updates(map[string]any{
			"current_streak":    next.CurrentStreak,
			"longest_streak":    next.LongestStreak,
			"last_checkin_date": next.LastCheckinDate,
			"updated_at":        next.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		checkin.HabitID = previous.ID
		if err := tx.Create(checkin).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (repo *HabitRepository) ListCheckins(habitID uint, limit int) ([]models.HabitCheckin, error) {
	query := repo.database.Where("habit_id = ?", habitID).Order("checkin_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	checkins := make([]models.HabitCheckin, 0)
	if err := query.Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}
