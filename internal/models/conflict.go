package models

import "time"

const MaxConflictTopics = 3

type ConflictTopic struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"-"`
	Topic              string    `gorm:"not null" json:"topic"`
	Description        string    `json:"description"`
	ResolutionStrategy string    `json:"resolution_strategy"`
	ProgressNotes      string    `json:"progress_notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (topic ConflictTopic) OwnerID() uint { return topic.UserID }
