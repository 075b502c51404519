package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Gavin1937/dirComp/pkg/models"
)

// Local is a filesystem-based tree backend rooted at a single directory
type Local struct {
	rootPath string
}

// NewLocal creates a backend for the directory at rootPath. The path is
// resolved to an absolute path and must exist and be a directory.
func NewLocal(rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.NotFoundError{Path: absPath}
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, &models.InvalidArgumentError{
			Field:   "root",
			Message: "path is not a directory: " + absPath,
		}
	}

	return &Local{rootPath: absPath}, nil
}

// List returns all regular files under the root, recursively, sorted
// lexicographically by full path so traversal order is reproducible.
func (l *Local) List(ctx context.Context) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(l.rootPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &models.NotFoundError{Path: p}
			}
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Regular files only: directories, symlinks, sockets and
		// devices never enter the comparison.
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(l.rootPath, p)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &models.NotFoundError{Path: p}
			}
			return err
		}

		files = append(files, FileInfo{
			Path:         p,
			RelativePath: relPath,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
			Mode:         info.Mode(),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// Read opens a file for reading
func (l *Local) Read(ctx context.Context, relPath string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.rootPath, relPath)

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.NotFoundError{Path: fullPath}
		}
		return nil, &models.IOError{Path: fullPath, Err: err}
	}

	return file, nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, relPath string) (*FileInfo, error) {
	fullPath := filepath.Join(l.rootPath, relPath)

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &models.NotFoundError{Path: fullPath}
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FileInfo{
		Path:         fullPath,
		RelativePath: relPath,
		Size:         info.Size(),
		ModTime:      info.ModTime(),
		Mode:         info.Mode(),
	}, nil
}

// Root returns the absolute root path
func (l *Local) Root() string {
	return l.rootPath
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
