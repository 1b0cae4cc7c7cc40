package models

import "time"

const (
	HabitTypeBuild = "build"
	HabitTypeBreak = "break"
)

type Habit struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	UserID               uint       `gorm:"not null;index" json:"-"`
	Name                 string     `gorm:"not null" json:"name"`
	Description          string     `json:"description"`
	HabitType            string     `gorm:"not null;index" json:"habit_type"`
	FrequencyDescription string     `gorm:"not null" json:"frequency_description"`
	CurrentStreak        int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak        int        `gorm:"not null;default:0" json:"longest_streak"`
	LastCheckinDate      *Date      `gorm:"type:date" json:"last_checkin_date"`
	Areas                []LifeArea `gorm:"many2many:habit_area_links;joinForeignKey:HabitID;joinReferences:AreaID" json:"areas"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (habit Habit) OwnerID() uint { return habit.UserID }

// HabitCheckin rows are append-only.
type HabitCheckin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HabitID     uint      `gorm:"not null;index" json:"habit_id"`
	CheckinDate Date      `gorm:"type:date;not null;index" json:"checkin_date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
