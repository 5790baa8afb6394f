// Package repository wraps the MongoDB collections behind small interfaces
// so services and workers can be tested against in-memory fakes.
package repository

import (
	"context"
	"errors"

	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrFileNotFound = errors.New("file not found")
)

// MaxFilesPerPage is the fixed listing window.
const MaxFilesPerPage = 20

type UserRepository interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type FileRepository interface {
	Insert(ctx context.Context, f *models.File) (*models.File, error)
	// FindByID looks a file up by id alone; used on the content path where
	// public files are readable by anyone.
	FindByID(ctx context.Context, id string) (*models.File, error)
	// FindOwned requires both id and owner to match.
	FindOwned(ctx context.Context, id, userID string) (*models.File, error)
	SetPublic(ctx context.Context, id, userID string, public bool) error
	// ListByParent returns the owner's files under parentID, newest first,
	// in windows of MaxFilesPerPage. page is zero-based; out-of-range pages
	// yield an empty slice.
	ListByParent(ctx context.Context, userID, parentID string, page int64) ([]models.FileView, error)
	Count(ctx context.Context) (int64, error)
}
