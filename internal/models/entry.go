package models

import "time"

// Entry is a journal entry filed under one life area.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	AreaID    uint      `gorm:"not null;index" json:"area_id"`
	Area      LifeArea  `gorm:"foreignKey:AreaID" json:"area"`
	Title     string    `json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	EntryDate Date      `gorm:"type:date;not null;index" json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (entry Entry) OwnerID() uint { return entry.UserID }
