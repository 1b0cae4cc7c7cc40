package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListConflictTopics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	topics, err := handler.conflictService.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "conflict topic")
	}
	return c.JSON(topics)
}

func (handler *Handler) GetConflictTopic(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	topic, err := handler.conflictService.Get(user.ID, topicID)
	if err != nil {
		return handler.respondServiceError(c, err, "conflict topic")
	}
	return c.JSON(topic)
}

func (handler *Handler) CreateConflictTopic(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.ConflictTopicChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	topic, err := handler.conflictService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "conflict topic")
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

func (handler *Handler) UpdateConflictTopic(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.ConflictTopicChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	topic, err := handler.conflictService.Update(user.ID, topicID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "conflict topic")
	}
	return c.JSON(topic)
}

func (handler *Handler) DeleteConflictTopic(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	topicID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.conflictService.Delete(user.ID, topicID); err != nil {
		return handler.respondServiceError(c, err, "conflict topic")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
