package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var (
	ErrStartDateInvalid = fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidInput)
	ErrEndDateInvalid   = fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidInput)
	ErrDateRangeInvalid = fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
)

// ParseDateRange reads optional inclusive bounds. A zero Date means the
// bound is open.
func ParseDateRange(rawFrom string, rawTo string) (models.Date, models.Date, error) {
	var from, to models.Date

	if fromRaw := strings.TrimSpace(rawFrom); fromRaw != "" {
		parsed, err := models.ParseDate(fromRaw)
		if err != nil {
			return models.Date{}, models.Date{}, ErrStartDateInvalid
		}
		from = parsed
	}
	if toRaw := strings.TrimSpace(rawTo); toRaw != "" {
		parsed, err := models.ParseDate(toRaw)
		if err != nil {
			return models.Date{}, models.Date{}, ErrEndDateInvalid
		}
		to = parsed
	}

	if err := validateDateRange(from, to); err != nil {
		return models.Date{}, models.Date{}, err
	}
	return from, to, nil
}

func validateDateRange(from models.Date, to models.Date) error {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return ErrDateRangeInvalid
	}
	return nil
}
