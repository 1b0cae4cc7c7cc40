package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var (
	ErrInvalidCheckin   = errors.New("invalid check-in")
	ErrFutureCheckin    = fmt.Errorf("%w: cannot check in for future dates", ErrInvalidCheckin)
	ErrDuplicateCheckin = fmt.Errorf("%w: already checked in for this date", ErrInvalidCheckin)
)

// StreakState is the slice of a habit the streak engine reads and writes.
type StreakState struct {
	HabitType       string
	CurrentStreak   int
	LongestStreak   int
	LastCheckinDate *models.Date
}

func StreakStateOf(habit models.Habit) StreakState {
	return StreakState{
		HabitType:       habit.HabitType,
		CurrentStreak:   habit.CurrentStreak,
		LongestStreak:   habit.LongestStreak,
		LastCheckinDate: habit.LastCheckinDate,
	}
}

// RecordCheckin computes the streak after a check-in on checkinDate.
//
// A build habit extends its streak on the day after the last check-in and
// restarts at 1 on any other date, including dates earlier than the last
// check-in. A break habit treats every check-in as a lapse and drops to 0;
// repeated check-ins on the same day are accepted for it.
func RecordCheckin(state StreakState, checkinDate models.Date, today models.Date) (StreakState, error) {
	if checkinDate.After(today) {
		return state, ErrFutureCheckin
	}

	next := state
	switch state.HabitType {
	case models.HabitTypeBuild:
		last := state.LastCheckinDate
		switch {
		case last == nil || last.IsZero():
			next.CurrentStreak = 1
		case checkinDate.Equal(*last):
			return state, ErrDuplicateCheckin
		case checkinDate.DaysSince(*last) == 1:
			next.CurrentStreak = state.CurrentStreak + 1
		default:
			next.CurrentStreak = 1
		}
	case models.HabitTypeBreak:
		next.CurrentStreak = 0
	default:
		return state, fmt.Errorf("%w: unknown habit type %q", ErrInvalidCheckin, state.HabitType)
	}

	next.LongestStreak = max(state.LongestStreak, next.CurrentStreak)
	recorded := checkinDate
	next.LastCheckinDate = &recorded
	return next, nil
}
