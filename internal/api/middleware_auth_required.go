package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// passwordChangeExempt lists the routes a user with a pending forced
// password change may still call.
var passwordChangeExempt = map[string]bool{
	"/api/auth/me":              true,
	"/api/auth/logout":          true,
	"/api/auth/change-password": true,
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if !errors.Is(err, errUnauthenticated) {
			handler.logger.Error("authenticate request", "err", err, "path", c.Path())
			return apiError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !passwordChangeExempt[c.Path()] {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}
	return c.Next()
}
