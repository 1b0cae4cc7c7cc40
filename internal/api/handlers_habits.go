package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habits, err := handler.habitService.List(user.ID, areaID, strings.TrimSpace(c.Query("habit_type")))
	if err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.JSON(habits)
}

func (handler *Handler) GetHabit(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	habit, err := handler.habitService.Get(user.ID, habitID)
	if err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.JSON(habit)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.HabitChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.HabitChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.Update(user.ID, habitID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.habitService.Delete(user.ID, habitID); err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) CheckinHabit(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var input checkinInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid input")
		}
	}

	result, err := handler.habitService.Checkin(user.ID, habitID, input.CheckinDate, input.Notes, handler.today())
	if err != nil {
		// An empty type means the habit was never loaded.
		if result.HabitType != "" {
			handler.metrics.RecordCheckin(result.HabitType, checkinOutcome(err))
		}
		return handler.respondServiceError(c, err, "habit")
	}
	handler.metrics.RecordCheckin(result.HabitType, "recorded")
	return c.JSON(result)
}

// ListHabitCheckins returns history newest first; limit caps the page size.
func (handler *Handler) ListHabitCheckins(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	limit, err := optionalUintQuery(c, "limit")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	checkins, err := handler.habitService.Checkins(user.ID, habitID, int(limit))
	if err != nil {
		return handler.respondServiceError(c, err, "habit")
	}
	return c.JSON(checkins)
}

func checkinOutcome(err error) string {
	switch {
	case errors.Is(err, services.ErrCheckinConflict):
		return "conflict"
	case errors.Is(err, services.ErrInvalidCheckin):
		return "rejected"
	default:
		return "failed"
	}
}
