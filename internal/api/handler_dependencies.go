package api

import (
	"github.com/terraincognita07/lifeboard/internal/db"
	"github.com/terraincognita07/lifeboard/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos
	handler.authService = services.NewAuthService(repos.Users)
	handler.areaService = services.NewAreaService(repos.Areas)
	handler.contentService = services.NewContentService()
	handler.goalService = services.NewGoalService(repos.Goals, repos.Areas, repos.Contacts)
	handler.habitService = services.NewHabitService(repos.Habits, repos.Areas)
	handler.taskService = services.NewTaskService(repos.Tasks, repos.Areas, repos.Contacts)
	handler.contactService = services.NewContactService(repos.Contacts, repos.Areas)
	handler.referenceService = services.NewReferenceService(repos.References, repos.Areas)
	handler.healthService = services.NewHealthService(repos.Health)
	handler.financeService = services.NewFinanceService(repos.Finance)
	handler.entryService = services.NewEntryService(repos.Entries, repos.Areas)
	handler.conflictService = services.NewConflictService(repos.Conflicts)
	return handler
}
