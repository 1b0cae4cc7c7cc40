package services

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type GoalRepository interface {
	ListByUser(userID uint, areaID uint, timeframe string, status string) ([]models.Goal, error)
	FindByID(goalID uint) (models.Goal, bool, error)
	Create(goal *models.Goal, areaIDs []uint) error
	Save(goal *models.Goal, areaIDs []uint) error
	Delete(goalID uint) error
}

// GoalChanges carries a create or update request. Nil fields are left
// untouched on update.
type GoalChanges struct {
	Title              *string      `json:"title"`
	Description        *string      `json:"description"`
	Timeframe          *string      `json:"timeframe"`
	Status             *string      `json:"status"`
	ProgressPercentage *int         `json:"progress_percentage"`
	DueDate            *models.Date `json:"due_date"`
	ContactID          *uint        `json:"contact_id"`
	AreaIDs            []uint       `json:"area_ids"`
}

type GoalService struct {
	goals    GoalRepository
	areas    AreaLookup
	contacts ContactLookup
}

func NewGoalService(goals GoalRepository, areas AreaLookup, contacts ContactLookup) *GoalService {
	return &GoalService{goals: goals, areas: areas, contacts: contacts}
}

func (service *GoalService) List(userID uint, areaID uint, timeframe string, status string) ([]models.Goal, error) {
	return service.goals.ListByUser(userID, areaID, timeframe, status)
}

func (service *GoalService) Get(userID uint, goalID uint) (models.Goal, error) {
	goal, found, err := service.goals.FindByID(goalID)
	return authorize(goal, found, err, userID)
}

func (service *GoalService) Create(userID uint, changes GoalChanges) (models.Goal, error) {
	if changes.Title == nil {
		return models.Goal{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if changes.Timeframe == nil {
		return models.Goal{}, fmt.Errorf("%w: timeframe is required", ErrInvalidInput)
	}
	if len(changes.AreaIDs) == 0 {
		return models.Goal{}, fmt.Errorf("%w: at least one area_id is required", ErrInvalidInput)
	}

	goal := models.Goal{UserID: userID, Status: models.GoalStatusNotStarted}
	areaIDs, err := service.apply(&goal, changes)
	if err != nil {
		return models.Goal{}, err
	}
	if err := service.goals.Create(&goal, areaIDs); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (service *GoalService) Update(userID uint, goalID uint, changes GoalChanges) (models.Goal, error) {
	goal, err := service.Get(userID, goalID)
	if err != nil {
		return models.Goal{}, err
	}
	if changes.AreaIDs != nil && len(changes.AreaIDs) == 0 {
		return models.Goal{}, fmt.Errorf("%w: at least one area_id is required", ErrInvalidInput)
	}

	areaIDs, err := service.apply(&goal, changes)
	if err != nil {
		return models.Goal{}, err
	}
	if err := service.goals.Save(&goal, areaIDs); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (service *GoalService) Delete(userID uint, goalID uint) error {
	if _, err := service.Get(userID, goalID); err != nil {
		return err
	}
	return service.goals.Delete(goalID)
}

// apply validates changes onto goal and returns the resolved area links,
// nil when the request does not touch them.
func (service *GoalService) apply(goal *models.Goal, changes GoalChanges) ([]uint, error) {
	if changes.Title != nil {
		title, err := requiredText("title", *changes.Title)
		if err != nil {
			return nil, err
		}
		goal.Title = title
	}
	applyText(&goal.Description, changes.Description)
	if changes.Timeframe != nil {
		if err := oneOf("timeframe", *changes.Timeframe, models.GoalTimeframeShort, models.GoalTimeframeMedium, models.GoalTimeframeLong); err != nil {
			return nil, err
		}
		goal.Timeframe = *changes.Timeframe
	}
	if changes.Status != nil {
		if err := oneOf("status", *changes.Status, models.GoalStatusNotStarted, models.GoalStatusInProgress, models.GoalStatusCompleted, models.GoalStatusAbandoned); err != nil {
			return nil, err
		}
		goal.Status = *changes.Status
	}
	if changes.ProgressPercentage != nil {
		progress := *changes.ProgressPercentage
		if progress < 0 || progress > 100 {
			return nil, fmt.Errorf("%w: progress_percentage must be between 0 and 100", ErrInvalidInput)
		}
		goal.ProgressPercentage = progress
	}
	if changes.DueDate != nil {
		goal.DueDate = changes.DueDate
	}
	if changes.ContactID != nil {
		if err := verifyContact(service.contacts, goal.UserID, changes.ContactID); err != nil {
			return nil, err
		}
		goal.ContactID = changes.ContactID
	}

	if changes.AreaIDs == nil {
		return nil, nil
	}
	return resolveAreaIDs(service.areas, changes.AreaIDs)
}
