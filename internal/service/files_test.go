package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/apperr"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/storage"
)

func newFileService(t *testing.T) (*FileService, *memFileRepo, *capturingQueue) {
	t.Helper()
	repo := &memFileRepo{}
	q := &capturingQueue{}
	svc := NewFileService(repo, storage.NewDisk(t.TempDir()), q, zap.NewNop().Sugar())
	return svc, repo, q
}

func testUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "kaido@beast.com"}
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestCreateFolder(t *testing.T) {
	svc, repo, q := newFileService(t)
	owner := testUser()

	view, err := svc.Create(context.Background(), owner, CreateInput{Name: "docs", Type: models.TypeFolder})
	require.NoError(t, err)

	assert.Equal(t, "docs", view.Name)
	assert.Equal(t, models.TypeFolder, view.Type)
	assert.Equal(t, 0, view.ParentID)
	assert.False(t, view.IsPublic)
	// folders carry no content path
	assert.Empty(t, repo.files[0].LocalPath)
	assert.Empty(t, q.payloads)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateInput
		msg  string
	}{
		{"missing name", CreateInput{Type: models.TypeFolder}, "Missing name"},
		{"invalid type", CreateInput{Name: "x", Type: "archive"}, "Invalid file type"},
		{"empty type", CreateInput{Name: "x"}, "Invalid file type"},
		{"missing data", CreateInput{Name: "x", Type: models.TypeFile}, "Missing file data"},
		{"bad base64", CreateInput{Name: "x", Type: models.TypeFile, Data: "%%%"}, "Invalid file data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, owner, tt.in)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.msg, ve.Msg)
		})
	}
}

func TestCreateParentChecks(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	plain, err := svc.Create(ctx, owner, CreateInput{Name: "plain.txt", Type: models.TypeFile, Data: b64("hi")})
	require.NoError(t, err)

	// a non-folder record cannot be a parent
	_, err = svc.Create(ctx, owner, CreateInput{Name: "x", Type: models.TypeFolder, ParentID: plain.ID})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Parent folder not found or invalid", ve.Msg)

	// malformed and absent parent ids collapse to the same rejection
	_, err = svc.Create(ctx, owner, CreateInput{Name: "x", Type: models.TypeFolder, ParentID: "not-an-id"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Parent folder not found or invalid", ve.Msg)

	_, err = svc.Create(ctx, owner, CreateInput{Name: "x", Type: models.TypeFolder, ParentID: "5f1e7d35c7ba06511e683b21"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Parent folder not found or invalid", ve.Msg)
}

func TestCreateFileInsideFolder(t *testing.T) {
	svc, repo, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	folder, err := svc.Create(ctx, owner, CreateInput{Name: "docs", Type: models.TypeFolder})
	require.NoError(t, err)

	view, err := svc.Create(ctx, owner, CreateInput{
		Name: "notes.txt", Type: models.TypeFile, ParentID: folder.ID, Data: b64("hello world"),
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID, view.ParentID)

	stored := repo.files[1]
	require.NotEmpty(t, stored.LocalPath)
	got, err := os.ReadFile(stored.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), got)
}

func TestCreateImageEnqueuesThumbnailJob(t *testing.T) {
	svc, repo, q := newFileService(t)
	owner := testUser()

	view, err := svc.Create(context.Background(), owner, CreateInput{
		Name: "cat.png", Type: models.TypeImage, Data: b64("fake image bytes"),
	})
	require.NoError(t, err)

	require.Len(t, q.payloads, 1)
	job, ok := q.payloads[0].(queue.ThumbnailJob)
	require.True(t, ok)
	assert.Equal(t, view.ID, job.FileID)
	assert.Equal(t, owner.ID.Hex(), job.UserID)
	assert.Contains(t, job.Name, repo.files[0].ID.Hex())
}

func TestCreateEnqueueFailureDoesNotFailUpload(t *testing.T) {
	svc, _, q := newFileService(t)
	q.err = errQueueDown

	_, err := svc.Create(context.Background(), testUser(), CreateInput{
		Name: "cat.png", Type: models.TypeImage, Data: b64("fake image bytes"),
	})
	assert.NoError(t, err)
}

func TestGet(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	view, err := svc.Create(ctx, owner, CreateInput{Name: "docs", Type: models.TypeFolder})
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view, got)

	var ve *apperr.ValidationError
	_, err = svc.Get(ctx, owner, "xyz")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid file ID", ve.Msg)

	// another caller's files are indistinguishable from absent ones
	_, err = svc.Get(ctx, testUser(), view.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetVisibility(t *testing.T) {
	svc, repo, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	view, err := svc.Create(ctx, owner, CreateInput{Name: "notes.txt", Type: models.TypeFile, Data: b64("x")})
	require.NoError(t, err)

	published, err := svc.SetVisibility(ctx, owner, view.ID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublic)
	assert.True(t, repo.files[0].IsPublic)

	unpublished, err := svc.SetVisibility(ctx, owner, view.ID, false)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublic)

	_, err = svc.SetVisibility(ctx, owner, "xyz", true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.SetVisibility(ctx, testUser(), view.ID, true)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestContentAccess(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	stranger := testUser()
	ctx := context.Background()

	view, err := svc.Create(ctx, owner, CreateInput{Name: "notes.txt", Type: models.TypeFile, Data: b64("secret")})
	require.NoError(t, err)

	// private: only the owner reads it
	path, name, err := svc.Content(ctx, owner, view.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", name)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)

	_, _, err = svc.Content(ctx, stranger, view.ID, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, _, err = svc.Content(ctx, nil, view.ID, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// published: readable by anyone, authenticated or not
	_, err = svc.SetVisibility(ctx, owner, view.ID, true)
	require.NoError(t, err)
	_, _, err = svc.Content(ctx, stranger, view.ID, "")
	assert.NoError(t, err)
	_, _, err = svc.Content(ctx, nil, view.ID, "")
	assert.NoError(t, err)
}

func TestContentEdgeCases(t *testing.T) {
	svc, repo, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	folder, err := svc.Create(ctx, owner, CreateInput{Name: "docs", Type: models.TypeFolder})
	require.NoError(t, err)
	_, _, err = svc.Content(ctx, owner, folder.ID, "")
	assert.ErrorIs(t, err, apperr.ErrNoContent)

	file, err := svc.Create(ctx, owner, CreateInput{Name: "notes.txt", Type: models.TypeFile, Data: b64("x")})
	require.NoError(t, err)

	// derivative not generated yet
	_, _, err = svc.Content(ctx, owner, file.ID, "500")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	base := repo.files[1].LocalPath
	require.NoError(t, os.WriteFile(base+"_500", []byte("thumb"), 0o644))
	path, _, err := svc.Content(ctx, owner, file.ID, "500")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("thumb"), got)

	_, _, err = svc.Content(ctx, owner, "xyz", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, _, err = svc.Content(ctx, owner, "5f1e7d35c7ba06511e683b21", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListPagination(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	ctx := context.Background()

	for i := 0; i < 45; i++ {
		_, err := svc.Create(ctx, owner, CreateInput{Name: fmt.Sprintf("f%02d", i), Type: models.TypeFolder})
		require.NoError(t, err)
	}

	page0, err := svc.List(ctx, owner, "", 0)
	require.NoError(t, err)
	require.Len(t, page0, 20)
	assert.Equal(t, "f44", page0[0].Name)

	// page 1 sees records 21-40, newest first
	page1, err := svc.List(ctx, owner, "", 1)
	require.NoError(t, err)
	require.Len(t, page1, 20)
	assert.Equal(t, "f24", page1[0].Name)
	assert.Equal(t, "f05", page1[19].Name)

	page2, err := svc.List(ctx, owner, "", 2)
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	// out of range is empty, never an error
	page9, err := svc.List(ctx, owner, "", 9)
	require.NoError(t, err)
	assert.Empty(t, page9)

	// negative pages clamp to the first window
	pageNeg, err := svc.List(ctx, owner, "", -1)
	require.NoError(t, err)
	assert.Len(t, pageNeg, 20)
}

func TestListScopedToParentAndOwner(t *testing.T) {
	svc, _, _ := newFileService(t)
	owner := testUser()
	other := testUser()
	ctx := context.Background()

	folder, err := svc.Create(ctx, owner, CreateInput{Name: "docs", Type: models.TypeFolder})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, CreateInput{Name: "inside.txt", Type: models.TypeFile, ParentID: folder.ID, Data: b64("x")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, CreateInput{Name: "mine.txt", Type: models.TypeFile, Data: b64("y")})
	require.NoError(t, err)

	root, err := svc.List(ctx, owner, "0", 0)
	require.NoError(t, err)
	require.Len(t, root, 1)
	assert.Equal(t, "docs", root[0].Name)

	inside, err := svc.List(ctx, owner, folder.ID, 0)
	require.NoError(t, err)
	require.Len(t, inside, 1)
	assert.Equal(t, "inside.txt", inside[0].Name)

	var ve *apperr.ValidationError
	_, err = svc.List(ctx, owner, "not-an-id", 0)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid parent folder ID", ve.Msg)
}
