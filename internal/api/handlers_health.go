package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListHealthItems(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	items, err := handler.healthService.List(user.ID, strings.TrimSpace(c.Query("catalog_type")))
	if err != nil {
		return handler.respondServiceError(c, err, "health item")
	}
	return c.JSON(items)
}

func (handler *Handler) GetHealthItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := handler.healthService.Get(user.ID, itemID)
	if err != nil {
		return handler.respondServiceError(c, err, "health item")
	}
	return c.JSON(item)
}

func (handler *Handler) CreateHealthItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.HealthItemChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	item, err := handler.healthService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "health item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateHealthItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.HealthItemChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	item, err := handler.healthService.Update(user.ID, itemID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "health item")
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteHealthItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.healthService.Delete(user.ID, itemID); err != nil {
		return handler.respondServiceError(c, err, "health item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
