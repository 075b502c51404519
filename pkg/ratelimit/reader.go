package ratelimit

import (
	"context"
	"io"
	"sync"
	"time"
)

// Limiter paces reads across any number of readers using a token bucket.
// Tokens are bytes; the bucket refills continuously at the configured
// rate. A nil *Limiter disables limiting everywhere it is accepted.
type Limiter struct {
	rate  int64 // bytes per second
	burst int64 // bucket capacity

	mu     sync.Mutex
	avail  float64
	filled time.Time
}

// minBurst keeps small limits usable with typical read buffer sizes
const minBurst = 64 * 1024

// NewLimiter creates a limiter for the given bytes-per-second rate.
// A non-positive rate returns nil, meaning no limiting.
func NewLimiter(bytesPerSecond int64) *Limiter {
	if bytesPerSecond <= 0 {
		return nil
	}

	burst := bytesPerSecond
	if burst < minBurst {
		burst = minBurst
	}

	return &Limiter{
		rate:   bytesPerSecond,
		burst:  burst,
		avail:  float64(burst),
		filled: time.Now(),
	}
}

// Rate returns the configured bytes-per-second limit.
func (l *Limiter) Rate() int64 {
	return l.rate
}

// take blocks until n bytes worth of tokens are available, or the
// context is cancelled. n is clamped to the bucket capacity.
func (l *Limiter) take(ctx context.Context, n int64) error {
	if n > l.burst {
		n = l.burst
	}

	for {
		l.mu.Lock()
		now := time.Now()
		l.avail += now.Sub(l.filled).Seconds() * float64(l.rate)
		if l.avail > float64(l.burst) {
			l.avail = float64(l.burst)
		}
		l.filled = now

		if l.avail >= float64(n) {
			l.avail -= float64(n)
			l.mu.Unlock()
			return nil
		}

		wait := time.Duration((float64(n) - l.avail) / float64(l.rate) * float64(time.Second))
		l.mu.Unlock()

		if wait < time.Millisecond {
			wait = time.Millisecond
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Reader wraps an io.Reader so that reads consume limiter tokens
type Reader struct {
	reader  io.Reader
	limiter *Limiter
	ctx     context.Context
}

// NewReader wraps reader with rate limiting. A nil limiter returns the
// reader unchanged.
func NewReader(ctx context.Context, reader io.Reader, limiter *Limiter) io.Reader {
	if limiter == nil {
		return reader
	}
	return &Reader{reader: reader, limiter: limiter, ctx: ctx}
}

// Read implements io.Reader, blocking until the limiter admits the read
func (r *Reader) Read(p []byte) (int, error) {
	toRead := int64(len(p))
	if toRead > r.limiter.burst {
		toRead = r.limiter.burst
	}

	if err := r.limiter.take(r.ctx, toRead); err != nil {
		return 0, err
	}

	return r.reader.Read(p[:toRead])
}
