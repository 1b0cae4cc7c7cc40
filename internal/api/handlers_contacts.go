package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListContacts(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	areaID, err := optionalUintQuery(c, "area_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	contacts, err := handler.contactService.List(user.ID, areaID)
	if err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.JSON(contacts)
}

func (handler *Handler) GetContact(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	contact, err := handler.contactService.Get(user.ID, contactID)
	if err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.JSON(contact)
}

func (handler *Handler) CreateContact(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.ContactChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	contact, err := handler.contactService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (handler *Handler) UpdateContact(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.ContactChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	contact, err := handler.contactService.Update(user.ID, contactID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.JSON(contact)
}

func (handler *Handler) DeleteContact(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.contactService.Delete(user.ID, contactID); err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetContactBirthday(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	info, err := handler.contactService.Birthday(user.ID, contactID, handler.today())
	if err != nil {
		return handler.respondServiceError(c, err, "contact")
	}
	return c.JSON(info)
}
