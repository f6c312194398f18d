package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// Compile-time check to ensure ThrottledStore satisfies the BlobStore interface.
var _ BlobStore = (*ThrottledStore)(nil)

// ThrottledStore wraps a BlobStore and rate-limits blob reads and writes
// with a shared token bucket measured in bytes per second. Use it to keep
// tree uploads from saturating a shared link.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore capped at bytesPerSec.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// Open opens a blob whose reads are rate-limited.
func (s *ThrottledStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledReader{ctx: ctx, rc: rc, limiter: s.limiter}, nil
}

// Create creates a blob whose writes are rate-limited.
func (s *ThrottledStore) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	wc, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledWriter{ctx: ctx, wc: wc, limiter: s.limiter}, nil
}

// Delete removes a blob.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// wait reserves n bytes from the limiter, splitting oversized requests into
// burst-sized chunks.
func wait(ctx context.Context, limiter *rate.Limiter, n int) error {
	for n > 0 {
		chunk := n
		if burst := limiter.Burst(); chunk > burst {
			chunk = burst
		}
		if err := limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}

	return nil
}

type throttledReader struct {
	ctx     context.Context
	rc      io.ReadCloser
	limiter *rate.Limiter
}

func (r *throttledReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := wait(r.ctx, r.limiter, n); werr != nil {
			return n, werr
		}
	}

	return n, err
}

func (r *throttledReader) Close() error {
	return r.rc.Close()
}

type throttledWriter struct {
	ctx     context.Context
	wc      io.WriteCloser
	limiter *rate.Limiter
}

func (w *throttledWriter) Write(p []byte) (int, error) {
	if err := wait(w.ctx, w.limiter, len(p)); err != nil {
		return 0, err
	}

	return w.wc.Write(p)
}

func (w *throttledWriter) Close() error {
	return w.wc.Close()
}
