package handlers

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
)

type AuthHandler struct {
	resolver *auth.Resolver
}

func NewAuthHandler(resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

// GetConnect authenticates basic credentials and returns a session token.
func (h *AuthHandler) GetConnect(c *fiber.Ctx) error {
	email, password, ok := basicCredentials(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return respondError(c, apperr.ErrUnauthorized)
	}
	token, err := h.resolver.Connect(c.Context(), email, password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// GetDisconnect ends the session. Success is a bare 204: empty body, no
// content-type or content-length headers.
func (h *AuthHandler) GetDisconnect(c *fiber.Ctx) error {
	if err := h.resolver.Disconnect(c.Context(), c.Get("X-Token")); err != nil {
		return respondError(c, err)
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

func basicCredentials(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	return email, password, ok
}
