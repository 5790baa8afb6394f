package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

// memFileRepo mimics the flat collection: insertion order is creation
// order, listing pages newest first.
type memFileRepo struct {
	files []*models.File
}

func (r *memFileRepo) Insert(_ context.Context, f *models.File) (*models.File, error) {
	f.ID = primitive.NewObjectID()
	r.files = append(r.files, f)
	return f, nil
}

func (r *memFileRepo) FindByID(_ context.Context, id string) (*models.File, error) {
	for _, f := range r.files {
		if f.ID.Hex() == id {
			return f, nil
		}
	}
	return nil, repository.ErrFileNotFound
}

func (r *memFileRepo) FindOwned(_ context.Context, id, userID string) (*models.File, error) {
	for _, f := range r.files {
		if f.ID.Hex() == id && f.UserID.Hex() == userID {
			return f, nil
		}
	}
	return nil, repository.ErrFileNotFound
}

func (r *memFileRepo) SetPublic(ctx context.Context, id, userID string, public bool) error {
	f, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	f.IsPublic = public
	return nil
}

func (r *memFileRepo) ListByParent(_ context.Context, userID, parentID string, page int64) ([]models.FileView, error) {
	var matched []*models.File
	for _, f := range r.files {
		if f.UserID.Hex() == userID && f.ParentID == parentID {
			matched = append(matched, f)
		}
	}
	// newest first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	start := page * repository.MaxFilesPerPage
	if start >= int64(len(matched)) {
		return []models.FileView{}, nil
	}
	end := start + repository.MaxFilesPerPage
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	views := make([]models.FileView, 0, end-start)
	for _, f := range matched[start:end] {
		views = append(views, f.View())
	}
	return views, nil
}

func (r *memFileRepo) Count(context.Context) (int64, error) {
	return int64(len(r.files)), nil
}

type memUserRepo struct {
	users []*models.User
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, u)
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// capturingQueue records enqueued payloads; the request path never blocks
// on a consumer, so capturing is all a fake needs to do.
type capturingQueue struct {
	keys     []string
	payloads []any
	err      error
}

var errQueueDown = errors.New("queue unavailable")

func (q *capturingQueue) Enqueue(_ context.Context, key string, payload any) error {
	if q.err != nil {
		return q.err
	}
	q.keys = append(q.keys, key)
	q.payloads = append(q.payloads, payload)
	return nil
}
