package models

import "time"

const (
	ReferenceTypeWebsite   = "website"
	ReferenceTypeScripture = "scripture"
	ReferenceTypeLaw       = "law"
	ReferenceTypeNote      = "note"
)

const (
	LawLevelFederal = "federal"
	LawLevelState   = "state"
	LawLevelLocal   = "local"
)

type Reference struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"-"`
	Title     string     `gorm:"not null" json:"title"`
	Type      string     `gorm:"not null;index" json:"type"`
	URL       string     `json:"url"`
	Content   string     `json:"content"`
	LawLevel  string     `json:"law_level"`
	Tags      string     `json:"tags"`
	Notes     string     `json:"notes"`
	Areas     []LifeArea `gorm:"many2many:reference_area_links;joinForeignKey:ReferenceID;joinReferences:AreaID" json:"areas"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (reference Reference) OwnerID() uint { return reference.UserID }
