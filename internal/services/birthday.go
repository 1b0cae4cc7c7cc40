package services

import (
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

type BirthdayInfo struct {
	Birthday     models.Date `json:"birthday"`
	CurrentAge   int         `json:"current_age"`
	NextBirthday models.Date `json:"next_birthday"`
	DaysUntil    int         `json:"days_until"`
}

// BirthdayInfoFor derives age and the next occurrence of birthDate as seen
// on today. A Feb 29 birthday is observed on Feb 28 in common years.
func BirthdayInfoFor(birthDate models.Date, today models.Date) BirthdayInfo {
	thisYear := birthdayIn(birthDate, today.Year)

	age := today.Year - birthDate.Year
	if today.Before(thisYear) {
		age--
	}

	next := thisYear
	if next.Before(today) {
		next = birthdayIn(birthDate, today.Year+1)
	}

	return BirthdayInfo{
		Birthday:     birthDate,
		CurrentAge:   age,
		NextBirthday: next,
		DaysUntil:    next.DaysSince(today),
	}
}

func birthdayIn(birthDate models.Date, year int) models.Date {
	if birthDate.Month == time.February && birthDate.Day == 29 && !isLeapYear(year) {
		return models.Date{Year: year, Month: time.February, Day: 28}
	}
	return models.Date{Year: year, Month: birthDate.Month, Day: birthDate.Day}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
