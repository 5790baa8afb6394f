// Package handlers exposes the HTTP surface over Fiber. Handlers translate
// typed core failures into structured responses; the core never writes a
// status code.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
)

func respondError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Msg})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	case errors.Is(err, apperr.ErrNoContent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A folder doesn't have content"})
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// userFromToken resolves the X-Token header to a user.
func userFromToken(c *fiber.Ctx, r *auth.Resolver) (*models.User, error) {
	return r.FromToken(c.Context(), c.Get("X-Token"))
}
