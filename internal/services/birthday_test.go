package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

func TestBirthdayInfoFor(t *testing.T) {
	cases := []struct {
		name     string
		birth    models.Date
		today    models.Date
		wantAge  int
		wantNext models.Date
		wantDays int
	}{
		{
			name:     "on the birthday",
			birth:    models.NewDate(1990, time.March, 15),
			today:    models.NewDate(2024, time.March, 15),
			wantAge:  34,
			wantNext: models.NewDate(2024, time.March, 15),
			wantDays: 0,
		},
		{
			name:     "day before the birthday",
			birth:    models.NewDate(1990, time.March, 15),
			today:    models.NewDate(2024, time.March, 14),
			wantAge:  33,
			wantNext: models.NewDate(2024, time.March, 15),
			wantDays: 1,
		},
		{
			name:     "birthday already passed this year",
			birth:    models.NewDate(1990, time.March, 15),
			today:    models.NewDate(2024, time.March, 16),
			wantAge:  34,
			wantNext: models.NewDate(2025, time.March, 15),
			wantDays: 364,
		},
		{
			name:     "leap day birthday in a common year",
			birth:    models.NewDate(2000, time.February, 29),
			today:    models.NewDate(2023, time.February, 28),
			wantAge:  23,
			wantNext: models.NewDate(2023, time.February, 28),
			wantDays: 0,
		},
		{
			name:     "leap day birthday before a leap year",
			birth:    models.NewDate(2000, time.February, 29),
			today:    models.NewDate(2024, time.January, 30),
			wantAge:  23,
			wantNext: models.NewDate(2024, time.February, 29),
			wantDays: 30,
		},
		{
			name:     "leap day birthday rolls into next common year",
			birth:    models.NewDate(2000, time.February, 29),
			today:    models.NewDate(2024, time.March, 1),
			wantAge:  24,
			wantNext: models.NewDate(2025, time.February, 28),
			wantDays: 364,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			info := BirthdayInfoFor(testCase.birth, testCase.today)
			if info.CurrentAge != testCase.wantAge {
				t.Fatalf("expected age %d, got %d", testCase.wantAge, info.CurrentAge)
			}
			if !info.NextBirthday.Equal(testCase.wantNext) {
				t.Fatalf("expected next birthday %s, got %s", testCase.wantNext, info.NextBirthday)
			}
			if info.DaysUntil != testCase.wantDays {
				t.Fatalf("expected %d days until, got %d", testCase.wantDays, info.DaysUntil)
			}
			if !info.Birthday.Equal(testCase.birth) {
				t.Fatalf("expected birthday echoed back, got %s", info.Birthday)
			}
		})
	}
}
