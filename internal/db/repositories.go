package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Areas      *AreaRepository
	Goals      *GoalRepository
	Habits     *HabitRepository
	Tasks      *TaskRepository
	Contacts   *ContactRepository
	References *ReferenceRepository
	Health     *HealthRepository
	Finance    *FinanceRepository
	Entries    *EntryRepository
	Conflicts  *ConflictRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Areas:      NewAreaRepository(database),
		Goals:      NewGoalRepository(database),
		Habits:     NewHabitRepository(database),
		Tasks:      NewTaskRepository(database),
		Contacts:   NewContactRepository(database),
		References: NewReferenceRepository(database),
		Health:     NewHealthRepository(database),
		Finance:    NewFinanceRepository(database),
		Entries:    NewEntryRepository(database),
		Conflicts:  NewConflictRepository(database),
	}
}
