package compare

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Gavin1937/dirComp/pkg/logging"
	"github.com/Gavin1937/dirComp/pkg/models"
	"github.com/Gavin1937/dirComp/pkg/output"
	"github.com/Gavin1937/dirComp/pkg/ratelimit"
	"github.com/Gavin1937/dirComp/pkg/storage"
)

// Comparator classifies the files of two trees as left-only, right-only
// or matched under the configured equivalence key. The left tree is
// indexed fully in memory; the right tree is streamed against it and
// matched entries are drained out of the left index, so whatever remains
// afterwards is exactly the left-only set.
type Comparator struct {
	left       storage.Backend
	right      storage.Backend
	opts       models.CompareOptions
	observer   output.Observer
	logger     logging.Logger
	limiter    *ratelimit.Limiter
	workers    int
	bufferSize int
}

// NewComparator creates a comparator over two tree backends
func NewComparator(left, right storage.Backend, opts models.CompareOptions) *Comparator {
	return &Comparator{
		left:       left,
		right:      right,
		opts:       opts,
		observer:   output.NewNullObserver(),
		logger:     logging.NewNullLogger(),
		workers:    1,
		bufferSize: 65536,
	}
}

// SetObserver sets the progress observer (nil restores the no-op observer)
func (c *Comparator) SetObserver(observer output.Observer) {
	if observer == nil {
		observer = output.NewNullObserver()
	}
	c.observer = observer
}

// SetLogger sets the logger (nil restores the null logger)
func (c *Comparator) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	c.logger = logger
}

// SetWorkers sets the descriptor computation worker count
func (c *Comparator) SetWorkers(workers int) {
	if workers < 1 {
		workers = 1
	}
	c.workers = workers
}

// SetBufferSize sets the hashing read buffer size
func (c *Comparator) SetBufferSize(size int) {
	c.bufferSize = size
}

// SetLimiter sets an optional read-rate limiter applied to hashing I/O
func (c *Comparator) SetLimiter(limiter *ratelimit.Limiter) {
	c.limiter = limiter
}

// Run executes the comparison and returns a report wrapping the result
// with run metadata. The error is terminal: a file vanishing or turning
// unreadable mid-run aborts the whole comparison.
func (c *Comparator) Run(ctx context.Context) (*models.CompareReport, error) {
	if err := c.opts.Validate(); err != nil {
		return nil, err
	}

	report := &models.CompareReport{
		RunID:     uuid.New().String(),
		LeftRoot:  c.left.Root(),
		RightRoot: c.right.Root(),
		Options:   c.opts,
		StartTime: time.Now(),
	}

	logger := c.logger.WithFields(logging.Fields{"run_id": report.RunID})
	logger.Info(ctx, "comparison started", logging.Fields{
		"left":  report.LeftRoot,
		"right": report.RightRoot,
		"key":   string(c.opts.KeyAttribute()),
	})

	result := models.NewComparisonResult()

	// Phase 1: index the left tree fully in memory. The returned map is
	// owned by this run and drained in place during phase 2.
	leftIndex, leftCount, err := c.indexer(ctx, c.left, "left").Index(ctx)
	if err != nil {
		logger.Error(ctx, "left tree indexing failed", err, nil)
		return nil, err
	}
	report.LeftFiles = leftCount
	logger.Debug(ctx, "left tree indexed", logging.Fields{
		"files": leftCount,
		"keys":  len(leftIndex),
	})

	// Phase 2: stream the right tree. A left entry is consumed by the
	// first right-side file sharing its key; later right-side files with
	// the same key land in the right-only map (or overwrite each other,
	// mirroring the left-side collision policy).
	rightCount, err := c.indexer(ctx, c.right, "right").Stream(ctx, func(desc *models.FileDescriptor) error {
		key := desc.Key(c.opts)
		if leftDesc, ok := leftIndex[key]; ok {
			result.Same[key] = models.DescriptorPair{Left: leftDesc, Right: desc}
			delete(leftIndex, key)
		} else {
			result.Right[key] = desc
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "right tree comparison failed", err, nil)
		return nil, err
	}
	report.RightFiles = rightCount

	// Phase 3: whatever survived the drain is left-only.
	result.Left = leftIndex

	report.Result = result
	report.Finish()

	logger.Info(ctx, "comparison finished", logging.Fields{
		"left_only":   len(result.Left),
		"right_only":  len(result.Right),
		"matched":     len(result.Same),
		"duration_ms": report.Duration.Milliseconds(),
	})

	return report, nil
}

// Compare executes the comparison and returns only the three-way result
func (c *Comparator) Compare(ctx context.Context) (*models.ComparisonResult, error) {
	report, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}
	return report.Result, nil
}

func (c *Comparator) indexer(ctx context.Context, backend storage.Backend, label string) *Indexer {
	builder := NewBuilder(backend, c.opts, c.bufferSize)
	if c.limiter != nil {
		builder.SetReaderWrapper(func(r io.Reader) io.Reader {
			return ratelimit.NewReader(ctx, r, c.limiter)
		})
	}
	return NewIndexer(backend, builder, c.observer, label, c.workers)
}
