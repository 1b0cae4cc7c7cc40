package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goals, err := handler.goalService.List(user.ID, areaID, strings.TrimSpace(c.Query("timeframe")), strings.TrimSpace(c.Query("status")))
	if err != nil {
		return handler.respondServiceError(c, err, "goal")
	}
	return c.JSON(goals)
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goal, err := handler.goalService.Get(user.ID, goalID)
	if err != nil {
		return handler.respondServiceError(c, err, "goal")
	}
	return c.JSON(goal)
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.GoalChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	goal, err := handler.goalService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.GoalChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	goal, err := handler.goalService.Update(user.ID, goalID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "goal")
	}
	return c.JSON(goal)
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.goalService.Delete(user.ID, goalID); err != nil {
		return handler.respondServiceError(c, err, "goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
