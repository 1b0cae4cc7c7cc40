package services

import (
	"github.com/terraincognita07/lifeboard/internal/models"
)

type stubAreas struct{}

func (stubAreas) FindByIDs(areaIDs []uint) ([]models.LifeArea, error) {
	found := make([]models.LifeArea, 0, len(areaIDs))
	for _, areaID := range areaIDs {
		if areaID >= 1 && areaID <= 8 {
			found = append(found, models.LifeArea{ID: areaID})
		}
	}
	return found, nil
}

type stubContacts map[uint]models.Contact

func (contacts stubContacts) FindByID(contactID uint) (models.Contact, bool, error) {
	contact, ok := contacts[contactID]
	return contact, ok, nil
}

type stubHabitRepository struct {
	habits       map[uint]models.Habit
	checkins     []models.HabitCheckin
	staleWrites  int
	applyCalls   int
	lastAreaIDs  []uint
	listedType   string
	historyLimit int
}

func newStubHabitRepository(habits ...models.Habit) *stubHabitRepository {
	repo := &stubHabitRepository{habits: map[uint]models.Habit{}}
	for _, habit := range habits {
		repo.habits[habit.ID] = habit
	}
	return repo
}

func (repo *stubHabitRepository) ListByUser(_ uint, _ uint, habitType string) ([]models.Habit, error) {
	repo.listedType = habitType
	return nil, nil
}

func (repo *stubHabitRepository) FindByID(habitID uint) (models.Habit, bool, error) {
	habit, ok := repo.habits[habitID]
	return habit, ok, nil
}

func (repo *stubHabitRepository) Create(habit *models.Habit, areaIDs []uint) error {
	habit.ID = uint(len(repo.habits) + 1)
	repo.habits[habit.ID] = *habit
	repo.lastAreaIDs = areaIDs
	return nil
}

func (repo *stubHabitRepository) Save(habit *models.Habit, areaIDs []uint) error {
	repo.habits[habit.ID] = *habit
	repo.lastAreaIDs = areaIDs
	return nil
}

func (repo *stubHabitRepository) Delete(habitID uint) error {
	delete(repo.habits, habitID)
	return nil
}

// ApplyCheckin mimics the guarded update: it refuses when the stored streak
// or last check-in date no longer matches previous, and can be told to fail
// a number of times.
func (repo *stubHabitRepository) ApplyCheckin(previous models.Habit, next models.Habit, checkin *models.HabitCheckin) (bool, error) {
	repo.applyCalls++
	if repo.staleWrites > 0 {
		repo.staleWrites--
		return false, nil
	}
	stored := repo.habits[previous.ID]
	if stored.CurrentStreak != previous.CurrentStreak || stored.LongestStreak != previous.LongestStreak {
		return false, nil
	}
	if !sameCheckinDate(stored.LastCheckinDate, previous.LastCheckinDate) {
		return false, nil
	}
	repo.habits[next.ID] = next
	checkin.HabitID = next.ID
	checkin.ID = uint(len(repo.checkins) + 1)
	repo.checkins = append(repo.checkins, *checkin)
	return true, nil
}

func sameCheckinDate(left *models.Date, right *models.Date) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return left.Equal(*right)
}

func (repo *stubHabitRepository) ListCheckins(_ uint, limit int) ([]models.HabitCheckin, error) {
	repo.historyLimit = limit
	return repo.checkins, nil
}

type stubTaskRepository struct {
	tasks map[uint]models.Task
}

func (repo *stubTaskRepository) ListByUser(uint, uint, string) ([]models.Task, error) {
	return nil, nil
}

func (repo *stubTaskRepository) FindByID(taskID uint) (models.Task, bool, error) {
	task, ok := repo.tasks[taskID]
	return task, ok, nil
}

func (repo *stubTaskRepository) Create(task *models.Task) error {
	task.ID = uint(len(repo.tasks) + 1)
	repo.tasks[task.ID] = *task
	return nil
}

func (repo *stubTaskRepository) Save(task *models.Task) error {
	repo.tasks[task.ID] = *task
	return nil
}

func (repo *stubTaskRepository) Delete(taskID uint) error {
	delete(repo.tasks, taskID)
	return nil
}

type stubConflictRepository struct {
	topics []models.ConflictTopic
}

func (repo *stubConflictRepository) ListByUser(uint) ([]models.ConflictTopic, error) {
	return repo.topics, nil
}

func (repo *stubConflictRepository) FindByID(topicID uint) (models.ConflictTopic, bool, error) {
	for _, topic := range repo.topics {
		if topic.ID == topicID {
			return topic, true, nil
		}
	}
	return models.ConflictTopic{}, false, nil
}

func (repo *stubConflictRepository) CreateWithinLimit(topic *models.ConflictTopic, limit int) (bool, error) {
	owned := 0
	for _, existing := range repo.topics {
		if existing.UserID == topic.UserID {
			owned++
		}
	}
	if owned >= limit {
		return false, nil
	}
	topic.ID = uint(len(repo.topics) + 1)
	repo.topics = append(repo.topics, *topic)
	return true, nil
}

func (repo *stubConflictRepository) Save(*models.ConflictTopic) error {
	return nil
}

func (repo *stubConflictRepository) Delete(uint) error {
	return nil
}

type stubEntryRepository struct {
	created []models.Entry
}

func (repo *stubEntryRepository) ListByUser(uint, uint, models.Date, models.Date) ([]models.Entry, error) {
	return repo.created, nil
}

func (repo *stubEntryRepository) FindByID(uint) (models.Entry, bool, error) {
	return models.Entry{}, false, nil
}

func (repo *stubEntryRepository) Create(entry *models.Entry) error {
	entry.ID = uint(len(repo.created) + 1)
	repo.created = append(repo.created, *entry)
	return nil
}

func (repo *stubEntryRepository) Save(*models.Entry) error {
	return nil
}

func (repo *stubEntryRepository) Delete(uint) error {
	return nil
}

type stubFinanceRepository struct {
	accounts []models.FinancialAccount
}

func (repo *stubFinanceRepository) ListByUser(userID uint, _ string) ([]models.FinancialAccount, error) {
	owned := make([]models.FinancialAccount, 0, len(repo.accounts))
	for _, account := range repo.accounts {
		if account.UserID == userID {
			owned = append(owned, account)
		}
	}
	return owned, nil
}

func (repo *stubFinanceRepository) FindByID(uint) (models.FinancialAccount, bool, error) {
	return models.FinancialAccount{}, false, nil
}

func (repo *stubFinanceRepository) Create(account *models.FinancialAccount) error {
	repo.accounts = append(repo.accounts, *account)
	return nil
}

func (repo *stubFinanceRepository) Save(*models.FinancialAccount) error {
	return nil
}

func (repo *stubFinanceRepository) Delete(uint) error {
	return nil
}

func stringPtr(value string) *string {
	return &value
}

func uintPtr(value uint) *uint {
	return &value
}

func intPtr(value int) *int {
	return &value
}
