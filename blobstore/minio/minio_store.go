// Package minio implements blobstore.BlobStore for MinIO and S3-compatible
// object storage.
package minio

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/hupe1980/kdgo/blobstore"
	"github.com/minio/minio-go/v7"
)

// Compile-time check to ensure Store satisfies the BlobStore interface.
var _ blobstore.BlobStore = (*Store)(nil)

// Store implements blobstore.BlobStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "trees/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	// Stat first so a missing key surfaces as ErrNotFound instead of an
	// error on first read.
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// Create creates a new blob for streaming writes. The upload runs in the
// background and completes when the returned writer is closed.
func (s *Store) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &writableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{})
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	key := s.key(name)

	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil // Already gone
		}
		return err
	}

	return nil
}

// List returns all blob names with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		// Strip our root prefix
		name := strings.TrimPrefix(obj.Key, s.prefix)
		name = strings.TrimPrefix(name, "/")
		if name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// writableBlob streams writes into a background upload.
type writableBlob struct {
	pw   *io.PipeWriter
	done chan error
}

func (w *writableBlob) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *writableBlob) Close() error {
	if err := w.pw.Close(); err != nil {
		return err
	}

	return <-w.done
}
