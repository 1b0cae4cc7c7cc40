package models

import "time"

const (
	GoalTimeframeShort  = "short"
	GoalTimeframeMedium = "medium"
	GoalTimeframeLong   = "long"
)

const (
	GoalStatusNotStarted = "not_started"
	GoalStatusInProgress = "in_progress"
	GoalStatusCompleted  = "completed"
	GoalStatusAbandoned  = "abandoned"
)

type Goal struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"not null;index" json:"-"`
	Title              string     `gorm:"not null" json:"title"`
	Description        string     `json:"description"`
	Timeframe          string     `gorm:"not null;index" json:"timeframe"`
	Status             string     `gorm:"not null;default:not_started;index" json:"status"`
	ProgressPercentage int        `gorm:"not null;default:0" json:"progress_percentage"`
	DueDate            *Date      `gorm:"type:date" json:"due_date"`
	ContactID          *uint      `json:"contact_id"`
	Areas              []LifeArea `gorm:"many2many:goal_area_links;joinForeignKey:GoalID;joinReferences:AreaID" json:"areas"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (goal Goal) OwnerID() uint { return goal.UserID }
