package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/models"
)

const (
	authCookieName = "lifeboard_session"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// today is the calendar day in the configured time zone.
func (handler *Handler) today() models.Date {
	return models.DateOf(handler.now().In(handler.location))
}
