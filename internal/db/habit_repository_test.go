package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/lifeboard/internal/models"
)

func TestHabitRepositoryApplyCheckinPersistsStreakAndHistory(t *testing.T) {
	database := openTestDatabase(t)
	user := createTestUser(t, database, "streaker")
	repo := NewHabitRepository(database)

	habit := models.Habit{
		UserID:               user.ID,
		Name:                 "Read",
		HabitType:            models.HabitTypeBuild,
		FrequencyDescription: "daily",
	}
	if err := repo.Create(&habit, []uint{2, 8}); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	if len(habit.Areas) != 2 {
		t.Fatalf("expected 2 linked areas, got %d", len(habit.Areas))
	}

	day := models.NewDate(2024, time.March, 10)
	next := habit
	next.CurrentStreak = 1
	next.LongestStreak = 1
	next.LastCheckinDate = &day

	applied, err := repo.ApplyCheckin(habit, next, &models.HabitCheckin{CheckinDate: day, Notes: "chapter 1"})
	if err != nil {
		t.Fatalf("apply checkin: %v", err)
	}
	if !applied {
		t.Fatal("expected checkin to be applied")
	}

	stored, found, err := repo.FindByID(habit.ID)
	if err != nil || !found {
		t.Fatalf("reload habit: found=%v err=%v", found, err)
	}
	if stored.CurrentStreak != 1 || stored.LongestStreak != 1 {
		t.Fatalf("unexpected stored streak: %+v", stored)
	}
	if stored.LastCheckinDate == nil || !stored.LastCheckinDate.Equal(day) {
		t.Fatalf("expected last checkin %s, got %v", day, stored.LastCheckinDate)
	}

	checkins, err := repo.ListCheckins(habit.ID, 0)
	if err != nil {
		t.Fatalf("list checkins: %v", err)
	}
	if len(checkins) != 1 || !checkins[0].CheckinDate.Equal(day) || checkins[0].Notes != "chapter 1" {
		t.Fatalf("unexpected checkin history: %+v", checkins)
	}
}

func TestHabitRepositoryApplyCheckinRejectsStaleSnapshot(t *testing.T) {
	database := openTestDatabase(t)
	user := createTestUser(t, database, "racer")
	repo := NewHabitRepository(database)

	habit := models.Habit{
		UserID:               user.ID,
		Name:                 "Run",
		HabitType:            models.HabitTypeBuild,
		FrequencyDescription: "daily",
	}
	if err := repo.Create(&habit, []uint{1}); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	day := models.NewDate(2024, time.March, 10)
	winner := habit
	winner.CurrentStreak = 1
	winner.LongestStreak = 1
	winner.LastCheckinDate = &day
	if applied, err := repo.ApplyCheckin(habit, winner, &models.HabitCheckin{CheckinDate: day}); err != nil || !applied {
		t.Fatalf("first apply: applied=%v err=%v", applied, err)
	}

	applied, err := repo.ApplyCheckin(habit, winner, &models.HabitCheckin{CheckinDate: day})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if applied {
		t.Fatal("expected stale snapshot to be rejected")
	}

	checkins, err := repo.ListCheckins(habit.ID, 0)
	if err != nil {
		t.Fatalf("list checkins: %v", err)
	}
	if len(checkins) != 1 {
		t.Fatalf("expected a single checkin row, got %d", len(checkins))
	}
}

func TestHabitRepositoryApplyCheckinRejectsReplayedSnapshotWithUnchangedStreak(t *testing.T) {
	database := openTestDatabase(t)
	user := createTestUser(t, database, "returner")
	repo := NewHabitRepository(database)

	habit := models.Habit{
		UserID:               user.ID,
		Name:                 "Journal",
		HabitType:            models.HabitTypeBuild,
		FrequencyDescription: "daily",
	}
	if err := repo.Create(&habit, []uint{1}); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	lastDay := models.NewDate(2024, time.March, 1)
	if err := database.Model(&models.Habit{}).Where("id = ?", habit.ID).Updates(map[string]any{
		"current_streak":    1,
		"longest_streak":    5,
		"last_checkin_date": lastDay,
	}).Error; err != nil {
		t.Fatalf("seed streak: %v", err)
	}
	snapshot, found, err := repo.FindByID(habit.ID)
	if err != nil || !found {
		t.Fatalf("reload habit: found=%v err=%v", found, err)
	}

	// A gap resets the streak to 1, so only the date tells the writes apart.
	day := models.NewDate(2024, time.March, 10)
	next := snapshot
	next.CurrentStreak = 1
	next.LongestStreak = 5
	next.LastCheckinDate = &day

	if applied, err := repo.ApplyCheckin(snapshot, next, &models.HabitCheckin{CheckinDate: day}); err != nil || !applied {
		t.Fatalf("first apply: applied=%v err=%v", applied, err)
	}
	applied, err := repo.ApplyCheckin(snapshot, next, &models.HabitCheckin{CheckinDate: day})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if applied {
		t.Fatal("expected replayed snapshot to be rejected")
	}

	checkins, err := repo.ListCheckins(habit.ID, 0)
	if err != nil {
		t.Fatalf("list checkins: %v", err)
	}
	if len(checkins) != 1 || !checkins[0].CheckinDate.Equal(day) {
		t.Fatalf("expected a single checkin on %s, got %+v", day, checkins)
	}
}

func TestHabitRepositoryApplyCheckinMatchesNeverCheckedInHabit(t *testing.T) {
	database := openTestDatabase(t)
	user := createTestUser(t, database, "firstday")
	repo := NewHabitRepository(database)

	habit := models.Habit{
		UserID:               user.ID,
		Name:                 "Floss",
		HabitType:            models.HabitTypeBuild,
		FrequencyDescription: "daily",
	}
	if err := repo.Create(&habit, []uint{1}); err != nil {
		t.Fatalf("create habit: %v", err)
	}

	day := models.NewDate(2024, time.March, 10)
	next := habit
	next.CurrentStreak = 1
	next.LongestStreak = 1
	next.LastCheckinDate = &day

	if applied, err := repo.ApplyCheckin(habit, next, &models.HabitCheckin{CheckinDate: day}); err != nil || !applied {
		t.Fatalf("apply on empty history: applied=%v err=%v", applied, err)
	}
}

func TestHabitRepositorySaveKeepsStreakColumns(t *testing.T) {
	database := openTestDatabase(t)
	user := createTestUser(t, database, "editor")
	repo := NewHabitRepository(database)

	habit := models.Habit{
		UserID:               user.ID,
		Name:                 "Stretch",
		HabitType:            models.HabitTypeBuild,
		FrequencyDescription: "daily",
	}
	if err := repo.Create(&habit, []uint{1}); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	if err := database.Model(&models.Habit{}).Where("id = ?", habit.ID).Update("current_streak", 5).Error; err != nil {
		t.Fatalf("seed streak: %v", err)
	}

	habit.Name = "Stretch twice"
	if err := repo.Save(&habit, []uint{1, 2}); err != nil {
		t.Fatalf("save habit: %v", err)
	}
	if habit.CurrentStreak != 5 {
		t.Fatalf("expected streak to survive edit, got %d", habit.CurrentStreak)
	}
	if habit.Name != "Stretch twice" || len(habit.Areas) != 2 {
		t.Fatalf("unexpected habit after save: %+v", habit)
	}
}
