// Package s3 implements blobstore.BlobStore for Amazon S3.
package s3

import (
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/kdgo/blobstore"
)

// Compile-time check to ensure Store satisfies the BlobStore interface.
var _ blobstore.BlobStore = (*Store)(nil)

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "trees/").
func NewStore(client *s3.Client, bucket, rootPrefix string) *Store {
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

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return out.Body, nil
}

// Create creates a new blob for streaming writes. The upload runs in the
// background via the transfer manager and completes when the returned
// writer is closed.
func (s *Store) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &writableBlob{
		pw:       pw,
		done:     make(chan error, 1),
		uploader: manager.NewUploader(s.client),
	}

	go func() {
		_, err := blob.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   pr,
		})
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})

	return err
}

// List returns all blob names with the given prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)

	return names, nil
}

// writableBlob streams writes into a background upload.
type writableBlob struct {
	pw       *io.PipeWriter
	done     chan error
	uploader *manager.Uploader
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
