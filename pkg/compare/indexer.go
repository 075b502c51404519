package compare

import (
	"context"
	"sync"

	"github.com/Gavin1937/dirComp/pkg/models"
	"github.com/Gavin1937/dirComp/pkg/output"
	"github.com/Gavin1937/dirComp/pkg/storage"
)

// Indexer walks one tree and computes a descriptor for every regular
// file, in deterministic lexicographic order. Descriptor computation may
// be parallelized across a worker pool; consumers always see descriptors
// in traversal order regardless of worker completion order.
type Indexer struct {
	backend  storage.Backend
	builder  *Builder
	observer output.Observer
	label    string
	workers  int
}

// NewIndexer creates an indexer for one side of the comparison. label
// names the side in progress output ("left" or "right").
func NewIndexer(backend storage.Backend, builder *Builder, observer output.Observer, label string, workers int) *Indexer {
	if observer == nil {
		observer = output.NewNullObserver()
	}
	if workers < 1 {
		workers = 1
	}
	return &Indexer{
		backend:  backend,
		builder:  builder,
		observer: observer,
		label:    label,
		workers:  workers,
	}
}

// Stream walks the tree and invokes fn once per regular file, in
// lexicographic order. Each file path is announced to the observer in
// traversal order before its descriptor is computed. With a single
// worker the last announced path is the one being processed when a
// failure occurs; with more workers up to that many announced files are
// in flight at once, and descriptors are replayed to fn in traversal
// order after the builds finish. Returns the number of files
// discovered.
func (ix *Indexer) Stream(ctx context.Context, fn func(*models.FileDescriptor) error) (int, error) {
	files, err := ix.backend.List(ctx)
	if err != nil {
		return 0, err
	}

	ix.observer.TreeStart(ix.label, ix.backend.Root(), len(files))
	defer ix.observer.TreeDone()

	if ix.workers == 1 {
		for _, f := range files {
			ix.observer.File(f.Path)
			desc, err := ix.builder.Build(ctx, f)
			if err != nil {
				return 0, err
			}
			if err := fn(desc); err != nil {
				return 0, err
			}
		}
		return len(files), nil
	}

	descs, err := ix.parallelBuild(ctx, files)
	if err != nil {
		return 0, err
	}
	for _, desc := range descs {
		if err := fn(desc); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

// parallelBuild computes descriptors over a bounded worker pool. Each
// file is opened and hashed with no cross-file shared state; results
// land at the file's traversal index so ordering survives the pool.
func (ix *Indexer) parallelBuild(ctx context.Context, files []storage.FileInfo) ([]*models.FileDescriptor, error) {
	descs := make([]*models.FileDescriptor, len(files))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, ix.workers)

	for i, f := range files {
		mu.Lock()
		failed := firstErr != nil
		mu.Unlock()
		if failed {
			break
		}

		select {
		case <-ctx.Done():
			mu.Lock()
			if firstErr == nil {
				firstErr = ctx.Err()
			}
			mu.Unlock()
		case sem <- struct{}{}:
			// Announced before dispatch so announcements keep traversal
			// order even when builds complete out of order.
			ix.observer.File(f.Path)
			wg.Add(1)
			go func(i int, f storage.FileInfo) {
				defer wg.Done()
				defer func() { <-sem }()

				desc, err := ix.builder.Build(ctx, f)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				descs[i] = desc
			}(i, f)
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return descs, nil
}

// Descriptors returns one descriptor per regular file, in traversal order.
func (ix *Indexer) Descriptors(ctx context.Context) ([]*models.FileDescriptor, error) {
	descs := make([]*models.FileDescriptor, 0)
	_, err := ix.Stream(ctx, func(desc *models.FileDescriptor) error {
		descs = append(descs, desc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return descs, nil
}

// Index builds the key-to-descriptor mapping for the tree. Duplicate
// keys (possible under hash keying) resolve last-seen-wins in traversal
// order; earlier descriptors for the same key are silently dropped.
func (ix *Indexer) Index(ctx context.Context) (map[string]*models.FileDescriptor, int, error) {
	index := make(map[string]*models.FileDescriptor)
	count, err := ix.Stream(ctx, func(desc *models.FileDescriptor) error {
		index[desc.Key(ix.builder.opts)] = desc
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return index, count, nil
}
