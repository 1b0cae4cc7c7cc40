package main

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/lifeboard/internal/api"
	"github.com/terraincognita07/lifeboard/internal/config"
	"github.com/terraincognita07/lifeboard/internal/metrics"
	"gorm.io/gorm"
)

func newApp(cfg config.Config, database *gorm.DB, location *time.Location, appLogger *log.Logger, registry *metrics.Metrics) (*fiber.App, error) {
	handler, err := api.NewHandler(database, api.Options{
		SecretKey:        cfg.SecretKey,
		Location:         location,
		CookieSecure:     cfg.CookieSecure,
		SessionTTL:       cfg.SessionTTL,
		Logger:           appLogger,
		Metrics:          registry,
		LoginMaxAttempts: cfg.LoginMaxAttempts,
		LoginWindow:      cfg.LoginWindow,
	})
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "lifeboard",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format:     "${status} ${method} ${path} ${latency} rid=${locals:requestid}\n",
		TimeFormat: time.RFC3339,
		Output:     appLogger.StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel}).Writer(),
	}))
	app.Use(compress.New())
	app.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api.RegisterRoutes(app, handler)
	return app, nil
}

func corsConfig(origins []string) cors.Config {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}
	return cors.Config{
		AllowOrigins:     strings.Join(allowed, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: true,
	}
}

// jsonErrorHandler renders errors that escape handlers, such as unmatched
// routes, in the same {"error": ...} shape the API uses.
func jsonErrorHandler(appLogger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		} else {
			appLogger.Error("unhandled error", "path", c.Path(), "err", err)
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
