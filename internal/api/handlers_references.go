package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListReferences(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	references, err := handler.referenceService.List(user.ID, areaID, strings.TrimSpace(c.Query("type")))
	if err != nil {
		return handler.respondServiceError(c, err, "reference")
	}
	return c.JSON(references)
}

func (handler *Handler) GetReference(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	referenceID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	reference, err := handler.referenceService.Get(user.ID, referenceID)
	if err != nil {
		return handler.respondServiceError(c, err, "reference")
	}
	return c.JSON(reference)
}

func (handler *Handler) CreateReference(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.ReferenceChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reference, err := handler.referenceService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "reference")
	}
	return c.Status(fiber.StatusCreated).JSON(reference)
}

func (handler *Handler) UpdateReference(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	referenceID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.ReferenceChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reference, err := handler.referenceService.Update(user.ID, referenceID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "reference")
	}
	return c.JSON(reference)
}

func (handler *Handler) DeleteReference(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	referenceID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.referenceService.Delete(user.ID, referenceID); err != nil {
		return handler.respondServiceError(c, err, "reference")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
