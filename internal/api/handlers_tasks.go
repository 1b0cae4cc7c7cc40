package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

// ListTasks orders high priority first, newest first within a priority.
func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	tasks, err := handler.taskService.List(user.ID, areaID, strings.TrimSpace(c.Query("status")))
	if err != nil {
		return handler.respondServiceError(c, err, "task")
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	task, err := handler.taskService.Get(user.ID, taskID)
	if err != nil {
		return handler.respondServiceError(c, err, "task")
	}
	return c.JSON(task)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.TaskChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.TaskChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.Update(user.ID, taskID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "task")
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.taskService.Delete(user.ID, taskID); err != nil {
		return handler.respondServiceError(c, err, "task")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
