package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var registration services.Registration
	if err := parseJSONBody(c, &registration); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(registration)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, validationMessage(err))
		}
		handler.logger.Error("register user", "err", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	handler.metrics.RecordRegistration()
	handler.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	key := clientKey(c)
	if handler.loginLimiter.blocked(key, handler.now()) {
		handler.metrics.RecordLogin("throttled")
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts, try again later")
	}

	var credentials loginInput
	if err := parseJSONBody(c, &credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Username, credentials.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		handler.loginLimiter.fail(key, handler.now())
		handler.metrics.RecordLogin("invalid")
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrAccountInactive):
		handler.metrics.RecordLogin("inactive")
		return apiError(c, fiber.StatusForbidden, "account is inactive")
	default:
		handler.logger.Error("authenticate user", "err", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	handler.loginLimiter.clear(key)
	if err := handler.setAuthCookie(c, &user); err != nil {
		handler.logger.Error("issue session token", "err", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	handler.metrics.RecordLogin("success")
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, validationMessage(err))
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		handler.logger.Error("change password", "user_id", user.ID, "err", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	refreshed, found, err := handler.authService.FindByID(user.ID)
	if err != nil || !found {
		handler.logger.Error("reload user after password change", "user_id", user.ID, "err", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	if err := handler.setAuthCookie(c, &refreshed); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}
