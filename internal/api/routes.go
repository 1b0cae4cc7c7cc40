package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.RequestMetrics)
	registerPublicRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPublicRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/health", handler.Health)
	app.Get("/healthz", handler.Health)
	if handler.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(handler.metrics.Handler()))
	}
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	api.Get("/areas", handler.ListAreas)

	ai := api.Group("/ai")
	ai.Get("/verse", handler.GetVerse)
	ai.Get("/insight", handler.GetInsight)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.CreateGoal)
	goals.Get("/:id", handler.GetGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Get("/:id", handler.GetHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/checkin", handler.CheckinHabit)
	habits.Get("/:id/checkins", handler.ListHabitCheckins)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Get("/:id", handler.GetTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	contacts := api.Group("/contacts", handler.AuthRequired)
	contacts.Get("", handler.ListContacts)
	contacts.Post("", handler.CreateContact)
	contacts.Get("/:id", handler.GetContact)
	contacts.Put("/:id", handler.UpdateContact)
	contacts.Delete("/:id", handler.DeleteContact)
	contacts.Get("/:id/birthday", handler.GetContactBirthday)

	references := api.Group("/references", handler.AuthRequired)
	references.Get("", handler.ListReferences)
	references.Post("", handler.CreateReference)
	references.Get("/:id", handler.GetReference)
	references.Put("/:id", handler.UpdateReference)
	references.Delete("/:id", handler.DeleteReference)

	health := api.Group("/health", handler.AuthRequired)
	health.Get("", handler.ListHealthItems)
	health.Post("", handler.CreateHealthItem)
	health.Get("/:id", handler.GetHealthItem)
	health.Put("/:id", handler.UpdateHealthItem)
	health.Delete("/:id", handler.DeleteHealthItem)

	finance := api.Group("/finance", handler.AuthRequired)
	finance.Get("", handler.ListFinancialAccounts)
	finance.Post("", handler.CreateFinancialAccount)
	finance.Get("/summary", handler.GetFinancialSummary)
	finance.Get("/:id", handler.GetFinancialAccount)
	finance.Put("/:id", handler.UpdateFinancialAccount)
	finance.Delete("/:id", handler.DeleteFinancialAccount)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Post("", handler.CreateEntry)
	entries.Get("/:id", handler.GetEntry)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)

	oneOnOne := api.Group("/one-on-one", handler.AuthRequired)
	oneOnOne.Get("", handler.ListConflictTopics)
	oneOnOne.Post("", handler.CreateConflictTopic)
	oneOnOne.Get("/:id", handler.GetConflictTopic)
	oneOnOne.Put("/:id", handler.UpdateConflictTopic)
	oneOnOne.Delete("/:id", handler.DeleteConflictTopic)
}
