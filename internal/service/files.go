package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
	"github.com/Zulu-inventor33/alx-files-manager/internal/storage"
)

// FileService owns the metadata tree and its invariants: ownership on every
// read and write, parent links that must point at folders, and the
// public/private flag gating the content path.
type FileService struct {
	files      repository.FileRepository
	disk       *storage.Disk
	thumbnails Enqueuer
	log        *zap.SugaredLogger
}

func NewFileService(files repository.FileRepository, disk *storage.Disk, thumbnails Enqueuer, log *zap.SugaredLogger) *FileService {
	return &FileService{files: files, disk: disk, thumbnails: thumbnails, log: log}
}

// CreateInput is an upload request. Data is base64-encoded content,
// required for non-folder types. ParentID is "" or "0" at the root.
type CreateInput struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// Create validates the input, persists bytes for non-folders, inserts the
// record, and enqueues a thumbnail job for images. The response is sent
// before the job necessarily runs.
func (s *FileService) Create(ctx context.Context, owner *models.User, in CreateInput) (models.FileView, error) {
	var zero models.FileView
	if in.Name == "" {
		return zero, apperr.Validation("Missing name")
	}
	if !models.ValidType(in.Type) {
		return zero, apperr.Validation("Invalid file type")
	}
	if in.Data == "" && in.Type != models.TypeFolder {
		return zero, apperr.Validation("Missing file data")
	}

	parentID := in.ParentID
	if parentID == "" {
		parentID = models.RootFolderID
	}
	if parentID != models.RootFolderID {
		if !models.IsValidID(parentID) {
			return zero, apperr.Validation("Parent folder not found or invalid")
		}
		parent, err := s.files.FindByID(ctx, parentID)
		if err != nil || parent.Type != models.TypeFolder {
			return zero, apperr.Validation("Parent folder not found or invalid")
		}
	}

	f := &models.File{
		UserID:   owner.ID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: parentID,
	}

	if in.Type != models.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return zero, apperr.Validation("Invalid file data")
		}
		localPath, err := s.disk.Write(data)
		if err != nil {
			return zero, err
		}
		f.LocalPath = localPath
	}

	f, err := s.files.Insert(ctx, f)
	if err != nil {
		return zero, err
	}

	if in.Type == models.TypeImage {
		job := queue.ThumbnailJob{
			FileID: f.ID.Hex(),
			UserID: owner.ID.Hex(),
			Name:   fmt.Sprintf("Thumbnail generation [%s-%s]", owner.ID.Hex(), f.ID.Hex()),
		}
		if err := s.thumbnails.Enqueue(ctx, f.ID.Hex(), job); err != nil {
			s.log.Errorw("thumbnail enqueue failed", "fileId", f.ID.Hex(), "error", err)
		}
	}
	return f.View(), nil
}

// Get returns the owner's file metadata.
func (s *FileService) Get(ctx context.Context, owner *models.User, id string) (models.FileView, error) {
	var zero models.FileView
	if !models.IsValidID(id) {
		return zero, apperr.Validation("Invalid file ID")
	}
	f, err := s.files.FindOwned(ctx, id, owner.ID.Hex())
	if err != nil {
		return zero, apperr.ErrNotFound
	}
	return f.View(), nil
}

// List enumerates the owner's files under parentID, newest first, in fixed
// windows of 20. Out-of-range pages yield an empty slice, not an error.
func (s *FileService) List(ctx context.Context, owner *models.User, parentID string, page int64) ([]models.FileView, error) {
	if parentID == "" {
		parentID = models.RootFolderID
	}
	if parentID != models.RootFolderID && !models.IsValidID(parentID) {
		return nil, apperr.Validation("Invalid parent folder ID")
	}
	if page < 0 {
		page = 0
	}
	return s.files.ListByParent(ctx, owner.ID.Hex(), parentID, page)
}

// SetVisibility flips isPublic. A malformed id, an absent record, and a
// record owned by someone else all collapse to NotFound. The returned view
// echoes the requested state; under a concurrent flip the persisted value
// is whichever update landed last.
func (s *FileService) SetVisibility(ctx context.Context, owner *models.User, id string, public bool) (models.FileView, error) {
	var zero models.FileView
	if !models.IsValidID(id) {
		return zero, apperr.ErrNotFound
	}
	f, err := s.files.FindOwned(ctx, id, owner.ID.Hex())
	if err != nil {
		return zero, apperr.ErrNotFound
	}
	if err := s.files.SetPublic(ctx, id, owner.ID.Hex(), public); err != nil {
		return zero, apperr.ErrNotFound
	}
	f.IsPublic = public
	return f.View(), nil
}

// Content resolves the on-disk path for a file's bytes. caller may be nil
// (unauthenticated); public files are readable by anyone, private ones only
// by their owner, and a denied read is indistinguishable from a missing
// record. variant selects a size-suffixed derivative.
func (s *FileService) Content(ctx context.Context, caller *models.User, id, variant string) (path, name string, err error) {
	if !models.IsValidID(id) {
		return "", "", apperr.ErrNotFound
	}
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		return "", "", apperr.ErrNotFound
	}
	if !f.IsPublic && (caller == nil || caller.ID != f.UserID) {
		return "", "", apperr.ErrNotFound
	}
	if f.Type == models.TypeFolder {
		return "", "", apperr.ErrNoContent
	}
	path, err = s.disk.Resolve(f.LocalPath, variant)
	if err != nil {
		return "", "", apperr.ErrNotFound
	}
	return path, f.Name, nil
}
