package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
	"github.com/Zulu-inventor33/alx-files-manager/internal/service"
)

type UserHandler struct {
	svc      *service.UserService
	resolver *auth.Resolver
}

func NewUserHandler(svc *service.UserService, resolver *auth.Resolver) *UserHandler {
	return &UserHandler{svc: svc, resolver: resolver}
}

type newUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew registers an account.
func (h *UserHandler) PostNew(c *fiber.Ctx) error {
	var req newUserReq
	// An unparseable body is the same as an empty one; the field checks
	// below produce the precise error.
	_ = c.BodyParser(&req)

	u, err := h.svc.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": u.ID.Hex(), "email": u.Email})
}

// GetMe returns the authenticated user's own record.
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	u, err := userFromToken(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": u.ID.Hex(), "email": u.Email})
}
