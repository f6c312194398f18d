package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing and retrieving immutable blobs,
// such as serialized trees.
type BlobStore interface {
	// Open opens a blob for streaming reads.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create creates a blob for streaming writes. The blob becomes
	// visible when the returned writer is closed without error.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
