package models

import "time"

type Contact struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"-"`
	Name      string     `gorm:"not null" json:"name"`
	Role      string     `json:"role"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Birthday  *Date      `gorm:"type:date" json:"birthday"`
	Notes     string     `json:"notes"`
	Areas     []LifeArea `gorm:"many2many:contact_area_links;joinForeignKey:ContactID;joinReferences:AreaID" json:"areas"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (contact Contact) OwnerID() uint { return contact.UserID }
