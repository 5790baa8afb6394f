package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

// AppHandler serves the liveness and statistics endpoints.
type AppHandler struct {
	mongo *mongo.Client
	redis *redis.Client
	users repository.UserRepository
	files repository.FileRepository
}

func NewAppHandler(mc *mongo.Client, rc *redis.Client, users repository.UserRepository, files repository.FileRepository) *AppHandler {
	return &AppHandler{mongo: mc, redis: rc, users: users, files: files}
}

// GetStatus reports whether the document store and the cache answer a ping.
func (h *AppHandler) GetStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbAlive := h.mongo.Ping(ctx, nil) == nil
	redisAlive := h.redis.Ping(ctx).Err() == nil
	return c.JSON(fiber.Map{"redis": redisAlive, "db": dbAlive})
}

// GetStats reports the user and file counts.
func (h *AppHandler) GetStats(c *fiber.Ctx) error {
	users, err := h.users.Count(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	files, err := h.files.Count(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users, "files": files})
}
