package models

import "time"

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"-"`
	AreaID      uint       `gorm:"not null;index" json:"area_id"`
	Area        LifeArea   `gorm:"foreignKey:AreaID" json:"area"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"not null;default:todo;index" json:"status"`
	Priority    string     `gorm:"not null;default:medium" json:"priority"`
	DueDate     *Date      `gorm:"type:date" json:"due_date"`
	ContactID   *uint      `json:"contact_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (task Task) OwnerID() uint { return task.UserID }
