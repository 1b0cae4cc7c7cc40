package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/lifeboard/internal/services"
)

func (handler *Handler) ListFinancialAccounts(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	accounts, err := handler.financeService.List(user.ID, strings.TrimSpace(c.Query("account_type")))
	if err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.JSON(accounts)
}

func (handler *Handler) GetFinancialSummary(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	summary, err := handler.financeService.Summary(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.JSON(summary)
}

func (handler *Handler) GetFinancialAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	account, err := handler.financeService.Get(user.ID, accountID)
	if err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.JSON(account)
}

func (handler *Handler) CreateFinancialAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	var changes services.FinancialAccountChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	account, err := handler.financeService.Create(user.ID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (handler *Handler) UpdateFinancialAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	var changes services.FinancialAccountChanges
	if err := parseJSONBody(c, &changes); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	account, err := handler.financeService.Update(user.ID, accountID, changes)
	if err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.JSON(account)
}

func (handler *Handler) DeleteFinancialAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.financeService.Delete(user.ID, accountID); err != nil {
		return handler.respondServiceError(c, err, "financial account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
