// Package storage maps file records to bytes on local disk.
package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNoFile is returned when the resolved path is absent or not a regular
// file.
var ErrNoFile = errors.New("no such file")

// Disk writes uploads under a root directory. Every write targets a fresh
// random filename, so concurrent writes never collide and no file is ever
// opened for writing twice.
type Disk struct {
	root string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Write persists data under a new unique name and returns its local path.
func (d *Disk) Write(data []byte) (string, error) {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(d.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Resolve turns a stored local path, plus an optional size variant, into
// the canonical absolute path to serve. Derivatives live next to the
// original under a size-suffixed name.
func (d *Disk) Resolve(localPath, variant string) (string, error) {
	path := localPath
	if variant != "" {
		path = localPath + "_" + variant
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return "", ErrNoFile
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", ErrNoFile
	}
	return filepath.Abs(resolved)
}
