package worker

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

type fakeFileRepo struct {
	files []*models.File
}

func (r *fakeFileRepo) add(f *models.File) *models.File {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	r.files = append(r.files, f)
	return f
}

func (r *fakeFileRepo) Insert(_ context.Context, f *models.File) (*models.File, error) {
	return r.add(f), nil
}

func (r *fakeFileRepo) FindByID(_ context.Context, id string) (*models.File, error) {
	for _, f := range r.files {
		if f.ID.Hex() == id {
			return f, nil
		}
	}
	return nil, repository.ErrFileNotFound
}

func (r *fakeFileRepo) FindOwned(_ context.Context, id, userID string) (*models.File, error) {
	for _, f := range r.files {
		if f.ID.Hex() == id && f.UserID.Hex() == userID {
			return f, nil
		}
	}
	return nil, repository.ErrFileNotFound
}

func (r *fakeFileRepo) SetPublic(context.Context, string, string, bool) error { return nil }

func (r *fakeFileRepo) ListByParent(context.Context, string, string, int64) ([]models.FileView, error) {
	return nil, nil
}

func (r *fakeFileRepo) Count(context.Context) (int64, error) {
	return int64(len(r.files)), nil
}

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, u)
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeMailer struct {
	to      []string
	subject []string
	err     error
}

var errMailDown = errors.New("mail provider unavailable")

func (m *fakeMailer) SendEmail(_ context.Context, toEmail, subject, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, toEmail)
	m.subject = append(m.subject, subject)
	return nil
}
