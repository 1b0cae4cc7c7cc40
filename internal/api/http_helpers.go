package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinels onto HTTP statuses. thing names
// the record kind in not-found messages.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, thing string) error {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, thing+" not found")
	case errors.Is(err, services.ErrRecordForbidden):
		return apiError(c, fiber.StatusForbidden, "not authorized")
	case errors.Is(err, services.ErrCheckinConflict):
		return apiError(c, fiber.StatusConflict, "habit was checked in concurrently, retry")
	case errors.Is(err, services.ErrConflictTopicLimit),
		errors.Is(err, services.ErrContactBirthdayMissing):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCheckin),
		errors.Is(err, services.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	handler.logger.Error("request failed", "path", c.Path(), "method", c.Method(), "err", err)
	return apiError(c, fiber.StatusInternalServerError, "internal server error")
}

// validationMessage drops the leading sentinel from a wrapped validation
// error: "invalid input: title is required" becomes "title is required".
// Anything after the sentinel is kept whole.
func validationMessage(err error) string {
	message := err.Error()
	for _, sentinel := range []error{services.ErrInvalidInput, services.ErrInvalidCheckin} {
		if trimmed, ok := strings.CutPrefix(message, sentinel.Error()+": "); ok {
			return trimmed
		}
	}
	return message
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

// optionalUintQuery reads a positive integer filter; absent means zero.
func optionalUintQuery(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(value), nil
}

func parseJSONBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	return c.BodyParser(target)
}
