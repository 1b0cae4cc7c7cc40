package models

import "time"

const (
	HealthCatalogDoctor     = "doctor"
	HealthCatalogFood       = "food"
	HealthCatalogSupplement = "supplement"
	HealthCatalogMedication = "medication"
	HealthCatalogMotion     = "motion"
)

// HealthCatalogItem is polymorphic on CatalogType; only the fields for its
// type are expected to be filled.
type HealthCatalogItem struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;index" json:"-"`
	CatalogType          string    `gorm:"not null;index" json:"catalog_type"`
	Name                 string    `gorm:"not null" json:"name"`
	Description          string    `json:"description"`
	DoctorSpecialty      string    `json:"doctor_specialty"`
	DoctorPhone          string    `json:"doctor_phone"`
	FoodCategory         string    `json:"food_category"`
	SupplementDosage     string    `json:"supplement_dosage"`
	MedicationDosage     string    `json:"medication_dosage"`
	MedicationFrequency  string    `json:"medication_frequency"`
	MotionDuration       string    `json:"motion_duration"`
	FrequencyDescription string    `json:"frequency_description"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (item HealthCatalogItem) OwnerID() uint { return item.UserID }
