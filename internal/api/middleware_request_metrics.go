package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics records every request under its route template.
func (handler *Handler) RequestMetrics(c *fiber.Ctx) error {
	if handler.metrics == nil {
		return c.Next()
	}

	done := handler.metrics.TrackInFlight()
	defer done()

	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	route := ""
	if matched := c.Route(); matched != nil && matched.Path != "/" {
		route = matched.Path
	} else if c.Path() == "/" {
		route = "/"
	}
	handler.metrics.ObserveRequest(c.Method(), route, status, time.Since(started))
	return err
}
