package db

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
	"gorm.io/gorm"
)

type AreaRepository struct {
	database *gorm.DB
}

func NewAreaRepository(database *gorm.DB) *AreaRepository {
	return &AreaRepository{database: database}
}

func (repo *AreaRepository) List() ([]models.LifeArea, error) {
	areas := make([]models.LifeArea, 0, 8)
	if err := repo.database.Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (repo *AreaRepository) FindByIDs(areaIDs []uint) ([]models.LifeArea, error) {
	areas := make([]models.LifeArea, 0, len(areaIDs))
	if len(areaIDs) == 0 {
		return areas, nil
	}
	if err := repo.database.Where("id IN ?", areaIDs).Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// areaLinkTable describes a many-to-many link table between a record and
// life_areas.
type areaLinkTable struct {
	name        string
	ownerColumn string
}

var (
	goalAreaLinks      = areaLinkTable{name: "goal_area_links", ownerColumn: "goal_id"}
	habitAreaLinks     = areaLinkTable{name: "habit_area_links", ownerColumn: "habit_id"}
	contactAreaLinks   = areaLinkTable{name: "contact_area_links", ownerColumn: "contact_id"}
	referenceAreaLinks = areaLinkTable{name: "reference_area_links", ownerColumn: "reference_id"}
)

func (links areaLinkTable) replace(tx *gorm.DB, ownerID uint, areaIDs []uint) error {
	if err := links.clear(tx, ownerID); err != nil {
		return err
	}
	for _, areaID := range areaIDs {
		statement := fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, area_id) VALUES (?, ?)`, links.name, links.ownerColumn)
		if err := tx.Exec(statement, ownerID, areaID).Error; err != nil {
			return fmt.Errorf("link %s %d to area %d: %w", links.ownerColumn, ownerID, areaID, err)
		}
	}
	return nil
}

func (links areaLinkTable) clear(tx *gorm.DB, ownerID uint) error {
	statement := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, links.name, links.ownerColumn)
	return tx.Exec(statement, ownerID).Error
}

// linkedTo restricts query to records linked to areaID; zero leaves it as is.
func (links areaLinkTable) linkedTo(query *gorm.DB, areaID uint) *gorm.DB {
	if areaID == 0 {
		return query
	}
	subquery := fmt.Sprintf(`id IN (SELECT %s FROM %s WHERE area_id = ?)`, links.ownerColumn, links.name)
	return query.Where(subquery, areaID)
}
