package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type TaskRepository interface {
	ListByUser(userID uint, areaID uint, status string) ([]models.Task, error)
	FindByID(taskID uint) (models.Task, bool, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	Delete(taskID uint) error
}

type TaskChanges struct {
	AreaID      *uint        `json:"area_id"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	DueDate     *models.Date `json:"due_date"`
	ContactID   *uint        `json:"contact_id"`
}

type TaskService struct {
	tasks    TaskRepository
	areas    AreaLookup
	contacts ContactLookup
	now      func() time.Time
}

func NewTaskService(tasks TaskRepository, areas AreaLookup, contacts ContactLookup) *TaskService {
	return &TaskService{tasks: tasks, areas: areas, contacts: contacts, now: time.Now}
}

func (service *TaskService) List(userID uint, areaID uint, status string) ([]models.Task, error) {
	return service.tasks.ListByUser(userID, areaID, status)
}

func (service *TaskService) Get(userID uint, taskID uint) (models.Task, error) {
	task, found, err := service.tasks.FindByID(taskID)
	return authorize(task, found, err, userID)
}

func (service *TaskService) Create(userID uint, changes TaskChanges) (models.Task, error) {
	if changes.AreaID == nil {
		return models.Task{}, fmt.Errorf("%w: area_id is required", ErrInvalidInput)
	}
	if changes.Title == nil {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	task := models.Task{
		UserID:   userID,
		Status:   models.TaskStatusTodo,
		Priority: models.TaskPriorityMedium,
	}
	if err := service.apply(&task, changes); err != nil {
		return models.Task{}, err
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) Update(userID uint, taskID uint, changes TaskChanges) (models.Task, error) {
	task, err := service.Get(userID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if err := service.apply(&task, changes); err != nil {
		return models.Task{}, err
	}
	if err := service.tasks.Save(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) Delete(userID uint, taskID uint) error {
	if _, err := service.Get(userID, taskID); err != nil {
		return err
	}
	return service.tasks.Delete(taskID)
}

func (service *TaskService) apply(task *models.Task, changes TaskChanges) error {
	if changes.AreaID != nil {
		if err := resolveAreaID(service.areas, *changes.AreaID); err != nil {
			return err
		}
		task.AreaID = *changes.AreaID
		task.Area = models.LifeArea{}
	}
	if changes.Title != nil {
		title, err := requiredText("title", *changes.Title)
		if err != nil {
			return err
		}
		task.Title = title
	}
	applyText(&task.Description, changes.Description)
	if changes.Priority != nil {
		if err := oneOf("priority", *changes.Priority, models.TaskPriorityLow, models.TaskPriorityMedium, models.TaskPriorityHigh); err != nil {
			return err
		}
		task.Priority = *changes.Priority
	}
	if changes.DueDate != nil {
		task.DueDate = changes.DueDate
	}
	if changes.ContactID != nil {
		if err := verifyContact(service.contacts, task.UserID, changes.ContactID); err != nil {
			return err
		}
		task.ContactID = changes.ContactID
	}
	if changes.Status != nil {
		if err := oneOf("status", *changes.Status, models.TaskStatusTodo, models.TaskStatusDoing, models.TaskStatusDone); err != nil {
			return err
		}
		service.transition(task, *changes.Status)
	}
	return nil
}

// transition stamps completed_at on entering done and clears it on leaving.
func (service *TaskService) transition(task *models.Task, status string) {
	switch {
	case status == models.TaskStatusDone && task.Status != models.TaskStatusDone:
		completedAt := service.now().UTC()
		task.CompletedAt = &completedAt
	case status != models.TaskStatusDone:
		task.CompletedAt = nil
	}
	task.Status = status
}
