// Package worker holds the background job handlers consumed from the queue.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/Zulu-inventor33/alx-files-manager/internal/queue"
	"github.com/Zulu-inventor33/alx-files-manager/internal/repository"
)

// thumbnailWidths are the derivative sizes, generated widest first.
var thumbnailWidths = []int{500, 250, 100}

// Thumbnailer turns an uploaded image into its three resized derivatives,
// written next to the original as <localPath>_<width>. Generation is
// deterministic and writes overwrite, so re-running a job converges.
type Thumbnailer struct {
	files repository.FileRepository
	log   *zap.SugaredLogger
}

func NewThumbnailer(files repository.FileRepository, log *zap.SugaredLogger) *Thumbnailer {
	return &Thumbnailer{files: files, log: log}
}

// Handle processes one thumbnail job payload. It fails fast on a missing
// field or record before any derivative is written; a failed resize stops
// the job at that width.
func (t *Thumbnailer) Handle(ctx context.Context, payload []byte) error {
	var job queue.ThumbnailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("bad thumbnail job payload: %w", err)
	}
	if job.FileID == "" {
		return errors.New("File ID is required")
	}
	if job.UserID == "" {
		return errors.New("User ID is required")
	}

	t.log.Infow("processing thumbnail job", "name", job.Name)

	f, err := t.files.FindOwned(ctx, job.FileID, job.UserID)
	if err != nil {
		return errors.New("File not found")
	}

	src, format, err := decodeImage(f.LocalPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", job.FileID, err)
	}
	for _, width := range thumbnailWidths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeThumbnail(f.LocalPath, src, format, width); err != nil {
			return fmt.Errorf("thumbnail %dpx for %s: %w", width, job.FileID, err)
		}
	}
	return nil
}

// decodeImage loads the source and remembers its encoding so derivatives
// keep the original format. Stored names carry no extension.
func decodeImage(path string) (image.Image, imaging.Format, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fh.Close()

	src, name, err := image.Decode(fh)
	if err != nil {
		return nil, 0, err
	}
	format, err := imaging.FormatFromExtension(name)
	if err != nil {
		format = imaging.PNG
	}
	return src, format, nil
}

func writeThumbnail(basePath string, src image.Image, format imaging.Format, width int) error {
	thumb := imaging.Resize(src, width, 0, imaging.Lanczos)
	out, err := os.Create(fmt.Sprintf("%s_%d", basePath, width))
	if err != nil {
		return err
	}
	if err := imaging.Encode(out, thumb, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
