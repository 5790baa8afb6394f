package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

// Enqueuer submits a background job. The request path never waits on the
// job's consumer.
type Enqueuer interface {
	Enqueue(ctx context.Context, key string, payload any) error
}

type UserService struct {
	users   repository.UserRepository
	welcome Enqueuer
	log     *zap.SugaredLogger
}

func NewUserService(users repository.UserRepository, welcome Enqueuer, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, welcome: welcome, log: log}
}

// Register creates an account and enqueues the welcome email. A failed
// enqueue is logged but does not fail the registration.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, apperr.Validation("Missing email")
	}
	if password == "" {
		return nil, apperr.Validation("Missing password")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Validation("Already exist")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, &models.User{Email: email, Password: hash})
	if err != nil {
		return nil, err
	}

	job := queue.WelcomeJob{UserID: u.ID.Hex()}
	if err := s.welcome.Enqueue(ctx, u.ID.Hex(), job); err != nil {
		s.log.Errorw("welcome email enqueue failed", "userId", u.ID.Hex(), "error", err)
	}
	return u, nil
}
