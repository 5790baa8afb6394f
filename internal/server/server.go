// Package server assembles the Fiber application.
package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/config"
	"github.com/Zulu-inventor33/alx-files-manager/internal/handlers"
)

// Handlers groups the route handlers wired in main.
type Handlers struct {
	App   *handlers.AppHandler
	Auth  *handlers.AuthHandler
	Users *handlers.UserHandler
	Files *handlers.FileHandler
}

// New builds the Fiber app with middlewares and the full route table.
func New(cfg *config.Config, log *zap.SugaredLogger, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(cors.New())
	app.Use(requestLogger(log))

	app.Get("/status", h.App.GetStatus)
	app.Get("/stats", h.App.GetStats)

	app.Get("/connect", h.Auth.GetConnect)
	app.Get("/disconnect", h.Auth.GetDisconnect)

	app.Post("/users", h.Users.PostNew)
	app.Get("/users/me", h.Users.GetMe)

	app.Post("/files", h.Files.PostUpload)
	app.Get("/files", h.Files.GetIndex)
	app.Get("/files/:id", h.Files.GetShow)
	app.Put("/files/:id/publish", h.Files.PutPublish)
	app.Put("/files/:id/unpublish", h.Files.PutUnpublish)
	app.Get("/files/:id/data", h.Files.GetFile)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()),
		})
	})

	return app
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Infow("http request",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
		)
		return err
	}
}
