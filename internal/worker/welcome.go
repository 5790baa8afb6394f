package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

const welcomeSubject = "Welcome to Files Manager"

// Mailer is the outbound mail collaborator.
type Mailer interface {
	SendEmail(ctx context.Context, toEmail, subject, html string) error
}

// WelcomeMailer sends the one-shot welcome email for a new user.
type WelcomeMailer struct {
	users repository.UserRepository
	mail  Mailer
	log   *zap.SugaredLogger
}

func NewWelcomeMailer(users repository.UserRepository, mail Mailer, log *zap.SugaredLogger) *WelcomeMailer {
	return &WelcomeMailer{users: users, mail: mail, log: log}
}

// Handle processes one welcome job payload. A missing user or a failed
// dispatch marks the job failed; there is no retry.
func (w *WelcomeMailer) Handle(ctx context.Context, payload []byte) error {
	var job queue.WelcomeJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("bad welcome job payload: %w", err)
	}
	if job.UserID == "" {
		return errors.New("User ID is required")
	}

	u, err := w.users.FindByID(ctx, job.UserID)
	if err != nil {
		return errors.New("User not found")
	}

	w.log.Infow("sending welcome email", "email", u.Email)

	body := fmt.Sprintf(
		"<div><h3>Hello %s,</h3>Welcome to Files Manager, a simple file management API. We hope this platform serves your needs well.</div>",
		u.Email,
	)
	return w.mail.SendEmail(ctx, u.Email, welcomeSubject, body)
}
