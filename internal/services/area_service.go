package services

import "github.com/terraincognita07/lifeboard/internal/models"

type AreaRepository interface {
	AreaLookup
	List() ([]models.LifeArea, error)
}

type AreaService struct {
	areas AreaRepository
}

func NewAreaService(areas AreaRepository) *AreaService {
	return &AreaService{areas: areas}
}

// List returns the seeded areas, or the built-in defaults when the table is
// empty.
func (service *AreaService) List() ([]models.LifeArea, error) {
	areas, err := service.areas.List()
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return models.DefaultLifeAreas(), nil
	}
	return areas, nil
}
