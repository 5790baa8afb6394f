// Package auth resolves request credentials to a concrete user.
package auth

import (
	"context"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
	"github.com/Zulu-inventor33/alx-files-manager/internal/session"
)

type Resolver struct {
	users    repository.UserRepository
	sessions *session.Store
}

func NewResolver(users repository.UserRepository, sessions *session.Store) *Resolver {
	return &Resolver{users: users, sessions: sessions}
}

// Connect verifies basic credentials and opens a session. Unknown email and
// wrong password both return apperr.ErrUnauthorized with nothing to tell
// them apart.
func (r *Resolver) Connect(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.ErrUnauthorized
	}
	u, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.ErrUnauthorized
	}
	if !CheckPassword(u.Password, password) {
		return "", apperr.ErrUnauthorized
	}
	token, err := r.sessions.Create(ctx, u.ID.Hex())
	if err != nil {
		// Cache outage means no session can be issued; that is an
		// authentication failure, not a 5xx.
		return "", apperr.ErrUnauthorized
	}
	return token, nil
}

// FromToken resolves an X-Token header to its user. The session may outlive
// the user record, so the user lookup is checked again.
func (r *Resolver) FromToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.ErrUnauthorized
	}
	userID := r.sessions.Resolve(ctx, token)
	if userID == "" {
		return nil, apperr.ErrUnauthorized
	}
	u, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.ErrUnauthorized
	}
	return u, nil
}

// Disconnect ends the session behind token. The token must resolve first;
// the destroy itself is idempotent.
func (r *Resolver) Disconnect(ctx context.Context, token string) error {
	if _, err := r.FromToken(ctx, token); err != nil {
		return err
	}
	return r.sessions.Destroy(ctx, token)
}
