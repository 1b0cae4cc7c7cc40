package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"uniqueIndex;not null" json:"username"`
	Email              string    `json:"email,omitempty"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	FullName           string    `json:"full_name,omitempty"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
