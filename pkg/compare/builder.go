package compare

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Gavin1937/dirComp/pkg/models"
	"github.com/Gavin1937/dirComp/pkg/storage"
)

// ReaderWrapper wraps the reader used for hashing, e.g. for rate limiting
type ReaderWrapper func(io.Reader) io.Reader

// Builder computes FileDescriptors for files inside a single tree. Only
// the attributes enabled in the options are computed; everything else is
// left at its zero value so the JSON encoding omits it.
type Builder struct {
	backend    storage.Backend
	opts       models.CompareOptions
	bufferPool *sync.Pool
	wrapper    ReaderWrapper
}

// NewBuilder creates a descriptor builder over the given backend.
// bufferSize controls the hashing read buffer; values below 4KB are
// raised to 4KB.
func NewBuilder(backend storage.Backend, opts models.CompareOptions, bufferSize int) *Builder {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &Builder{
		backend: backend,
		opts:    opts,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// SetReaderWrapper sets a function to wrap hash readers (e.g. for rate limiting)
func (b *Builder) SetReaderWrapper(wrapper ReaderWrapper) {
	b.wrapper = wrapper
}

// Build produces a descriptor for one regular file previously discovered
// under the builder's tree. Files that vanish between discovery and
// build surface as NotFoundError; unreadable files as IOError.
func (b *Builder) Build(ctx context.Context, info storage.FileInfo) (*models.FileDescriptor, error) {
	desc := &models.FileDescriptor{}

	if b.opts.Path || b.opts.Size {
		// Re-stat at build time so a file deleted mid-run is reported
		// rather than described with stale metadata.
		current, err := b.backend.Stat(ctx, info.RelativePath)
		if err != nil {
			return nil, err
		}

		if b.opts.Path {
			relPath, err := b.relativePath(info)
			if err != nil {
				return nil, err
			}
			desc.Path = relPath
		}

		if b.opts.Size {
			size := current.Size
			desc.Size = &size
		}
	}

	if b.opts.Hash {
		hash, err := b.hashFile(ctx, info.RelativePath)
		if err != nil {
			return nil, err
		}
		desc.Hash = hash
	}

	return desc, nil
}

// relativePath normalizes the discovered relative path to slash form.
// The out-of-root check is unreachable under correct traversal and kept
// as an invariant assertion.
func (b *Builder) relativePath(info storage.FileInfo) (string, error) {
	relPath := filepath.ToSlash(info.RelativePath)
	if relPath == ".." || strings.HasPrefix(relPath, "../") || filepath.IsAbs(relPath) {
		return "", &models.InvalidArgumentError{
			Field:   "file",
			Message: fmt.Sprintf("file %s is not under root %s", info.Path, b.backend.Root()),
		}
	}
	return relPath, nil
}

// hashFile computes the MD5 digest of the whole file as lowercase hex
func (b *Builder) hashFile(ctx context.Context, relPath string) (string, error) {
	reader, err := b.backend.Read(ctx, relPath)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	var r io.Reader = reader
	if b.wrapper != nil {
		r = b.wrapper(r)
	}

	hasher := md5.New()

	bufPtr := b.bufferPool.Get().(*[]byte)
	buf := *bufPtr
	defer b.bufferPool.Put(bufPtr)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &models.IOError{Path: relPath, Err: err}
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
