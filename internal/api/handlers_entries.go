package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

// ListEntries filters by area and an inclusive start_date/end_date range.
func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	from, to, err := services.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	entries, err := handler.entryService.List(user.ID, areaID, from, to)
	if err != nil {
		return handler.respondServiceError(c, err, "entry")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := handler.entryService.Get(user.ID, entryID)
	if err != nil {
		return handler.respondServiceError(c, err, "entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.EntryChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.entryService.Create(user.ID, changes, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.EntryChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.entryService.Update(user.ID, entryID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.entryService.Delete(user.ID, entryID); err != nil {
		return handler.respondServiceError(c, err, "entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
