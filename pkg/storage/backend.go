package storage

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// FileInfo represents metadata about a regular file inside a tree
type FileInfo struct {
	Path         string
	RelativePath string
	Size         int64
	ModTime      time.Time
	Mode         fs.FileMode
}

// Backend defines the read-only interface a comparison tree is accessed
// through. The local filesystem is the only implementation today; the
// interface keeps the core testable and leaves room for remote trees.
type Backend interface {
	// List returns every regular file under the root, recursively,
	// sorted lexicographically by full path. Directories, symlinks and
	// other non-regular entries are excluded.
	List(ctx context.Context) ([]FileInfo, error)

	// Read opens a file (identified by root-relative path) for reading
	Read(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Stat returns metadata for a file identified by root-relative path
	Stat(ctx context.Context, relPath string) (*FileInfo, error)

	// Root returns the absolute root path of the tree
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
