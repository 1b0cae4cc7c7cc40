package api

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	apiName    = "Life Management API"
	apiVersion = "1.0.0"
)

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        apiName,
		"version":     apiVersion,
		"description": "Personal life management across eight life areas",
		"features": fiber.Map{
			"goals":      "Short, medium and long term goals per life area",
			"habits":     "Build and break habits with streak tracking",
			"tasks":      "Area scoped tasks with priorities",
			"contacts":   "People with roles, areas and birthdays",
			"references": "Websites, scripture, laws and notes",
			"health":     "Doctors, foods, supplements, medications and motion",
			"finance":    "Accounts with asset and liability summary",
			"entries":    "Dated journal entries",
			"one_on_one": "Up to three conflict topics",
		},
	})
}

// Health reports liveness and whether the database answers a ping.
func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		handler.logger.Warn("health check failed", "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy"})
	}
	return c.JSON(fiber.Map{"status": "healthy"})
}

func (handler *Handler) ListAreas(c *fiber.Ctx) error {
	areas, err := handler.areaService.List()
	if err != nil {
		return handler.respondServiceError(c, err, "area")
	}
	return c.JSON(areas)
}

func (handler *Handler) GetVerse(c *fiber.Ctx) error {
	area := strings.TrimSpace(c.Query("area"))
	if area == "" {
		return apiError(c, fiber.StatusBadRequest, "area is required")
	}
	return c.JSON(handler.contentService.Verse(area))
}

func (handler *Handler) GetInsight(c *fiber.Ctx) error {
	area := strings.TrimSpace(c.Query("area"))
	if area == "" {
		return apiError(c, fiber.StatusBadRequest, "area is required")
	}
	return c.JSON(handler.contentService.Insight(area))
}
