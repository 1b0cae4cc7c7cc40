package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var ErrCheckinConflict = errors.New("habit was checked in concurrently")

const defaultCheckinHistoryLimit = 100

type HabitRepository interface {
	ListByUser(userID uint, areaID uint, habitType string) ([]models.Habit, error)
	FindByID(habitID uint) (models.Habit, bool, error)
	Create(habit *models.Habit, areaIDs []uint) error
	Save(habit *models.Habit, areaIDs []uint) error
	Delete(habitID uint) error
	ApplyCheckin(previous models.Habit, next models.Habit, checkin *models.HabitCheckin) (bool, error)
	ListCheckins(habitID uint, limit int) ([]models.HabitCheckin, error)
}

type HabitChanges struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	HabitType            *string `json:"habit_type"`
	FrequencyDescription *string `json:"frequency_description"`
	AreaIDs              []uint  `json:"area_ids"`
}

// CheckinResult carries HabitID and HabitType even when the check-in is
// refused after the habit was loaded.
type CheckinResult struct {
	HabitID       uint        `json:"habit_id"`
	HabitType     string      `json:"habit_type"`
	CheckinDate   models.Date `json:"checkin_date"`
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	Message       string      `json:"message"`
}

type HabitService struct {
	habits HabitRepository
	areas  AreaLookup
	locks  *keyedMutex
	now    func() time.Time
}

func NewHabitService(habits HabitRepository, areas AreaLookup) *HabitService {
	return &HabitService{
		habits: habits,
		areas:  areas,
		locks:  newKeyedMutex(),
		now:    time.Now,
	}
}

// NormalizeHabitType maps the accepted spellings onto build or break.
func NormalizeHabitType(raw string) (string, error) {
	switch raw {
	case models.HabitTypeBuild, "gain":
		return models.HabitTypeBuild, nil
	case models.HabitTypeBreak, "lose":
		return models.HabitTypeBreak, nil
	default:
		return "", fmt.Errorf("%w: habit_type must be one of build, break", ErrInvalidInput)
	}
}

func (service *HabitService) List(userID uint, areaID uint, habitType string) ([]models.Habit, error) {
	if habitType != "" {
		normalized, err := NormalizeHabitType(habitType)
		if err != nil {
			return nil, err
		}
		habitType = normalized
	}
	return service.habits.ListByUser(userID, areaID, habitType)
}

func (service *HabitService) Get(userID uint, habitID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByID(habitID)
	return authorize(habit, found, err, userID)
}

func (service *HabitService) Create(userID uint, changes HabitChanges) (models.Habit, error) {
	switch {
	case changes.Name == nil:
		return models.Habit{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case changes.HabitType == nil:
		return models.Habit{}, fmt.Errorf("%w: habit_type is required", ErrInvalidInput)
	case changes.FrequencyDescription == nil:
		return models.Habit{}, fmt.Errorf("%w: frequency_description is required", ErrInvalidInput)
	}

	habit := models.Habit{UserID: userID}
	areaIDs, err := service.apply(&habit, changes)
	if err != nil {
		return models.Habit{}, err
	}
	if areaIDs == nil {
		areaIDs = []uint{}
	}
	if err := service.habits.Create(&habit, areaIDs); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Update(userID uint, habitID uint, changes HabitChanges) (models.Habit, error) {
	unlock := service.locks.Lock(habitID)
	defer unlock()

	habit, err := service.Get(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	areaIDs, err := service.apply(&habit, changes)
	if err != nil {
		return models.Habit{}, err
	}
	habit.UpdatedAt = service.now()
	if err := service.habits.Save(&habit, areaIDs); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Delete(userID uint, habitID uint) error {
	unlock := service.locks.Lock(habitID)
	defer unlock()

	if _, err := service.Get(userID, habitID); err != nil {
		return err
	}
	return service.habits.Delete(habitID)
}

// Checkin records a check-in on checkinDate, or today when nil. Check-ins
// on the same habit are serialized; the repository additionally refuses to
// overwrite a streak that changed since it was read.
func (service *HabitService) Checkin(userID uint, habitID uint, checkinDate *models.Date, notes string, today models.Date) (CheckinResult, error) {
	unlock := service.locks.Lock(habitID)
	defer unlock()

	habit, err := service.Get(userID, habitID)
	if err != nil {
		return CheckinResult{}, err
	}
	result := CheckinResult{HabitID: habit.ID, HabitType: habit.HabitType}

	day := today
	if checkinDate != nil && !checkinDate.IsZero() {
		day = *checkinDate
	}

	next, err := RecordCheckin(StreakStateOf(habit), day, today)
	if err != nil {
		return result, err
	}

	updated := habit
	updated.CurrentStreak = next.CurrentStreak
	updated.LongestStreak = next.LongestStreak
	updated.LastCheckinDate = next.LastCheckinDate
	updated.UpdatedAt = service.now()

	checkin := models.HabitCheckin{CheckinDate: day, Notes: notes}
	applied, err := service.habits.ApplyCheckin(habit, updated, &checkin)
	if err != nil {
		return result, err
	}
	if !applied {
		return result, ErrCheckinConflict
	}

	result.CheckinDate = day
	result.CurrentStreak = updated.CurrentStreak
	result.LongestStreak = updated.LongestStreak
	result.Message = fmt.Sprintf("Checked in! Current streak: %d days", updated.CurrentStreak)
	return result, nil
}

func (service *HabitService) Checkins(userID uint, habitID uint, limit int) ([]models.HabitCheckin, error) {
	if _, err := service.Get(userID, habitID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultCheckinHistoryLimit
	}
	return service.habits.ListCheckins(habitID, limit)
}

func (service *HabitService) apply(habit *models.Habit, changes HabitChanges) ([]uint, error) {
	if changes.Name != nil {
		name, err := requiredText("name", *changes.Name)
		if err != nil {
			return nil, err
		}
		habit.Name = name
	}
	applyText(&habit.Description, changes.Description)
	if changes.HabitType != nil {
		habitType, err := NormalizeHabitType(*changes.HabitType)
		if err != nil {
			return nil, err
		}
		habit.HabitType = habitType
	}
	if changes.FrequencyDescription != nil {
		frequency, err := requiredText("frequency_description", *changes.FrequencyDescription)
		if err != nil {
			return nil, err
		}
		habit.FrequencyDescription = frequency
	}

	if changes.AreaIDs == nil {
		return nil, nil
	}
	return resolveAreaIDs(service.areas, changes.AreaIDs)
}
