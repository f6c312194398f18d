package main

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/kdgo/blobstore"
	miniostore "github.com/hupe1980/kdgo/blobstore/minio"
	s3store "github.com/hupe1980/kdgo/blobstore/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// openStore resolves a tree reference to a blob store and a blob name.
//
// Supported forms:
//   - a local file path (default)
//   - s3://bucket/key (credentials from the default AWS chain)
//   - minio://endpoint/bucket/key (credentials from MINIO_ACCESS_KEY /
//     MINIO_SECRET_KEY; append ?insecure=true for plain HTTP)
func openStore(ctx context.Context, ref string, throttle int) (blobstore.BlobStore, string, error) {
	store, name, err := resolveStore(ctx, ref)
	if err != nil {
		return nil, "", err
	}

	if throttle > 0 {
		store = blobstore.NewThrottledStore(store, throttle)
	}

	return store, name, nil
}

func resolveStore(ctx context.Context, ref string) (blobstore.BlobStore, string, error) {
	switch {
	case strings.HasPrefix(ref, "s3://"):
		return resolveS3(ctx, ref)
	case strings.HasPrefix(ref, "minio://"):
		return resolveMinio(ref)
	default:
		dir := filepath.Dir(ref)
		store, err := blobstore.NewLocalStore(dir)
		if err != nil {
			return nil, "", err
		}
		return store, filepath.Base(ref), nil
	}
}

func resolveS3(ctx context.Context, ref string) (blobstore.BlobStore, string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, "", err
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, "", fmt.Errorf("invalid S3 reference %q: want s3://bucket/key", ref)
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", err
	}

	return s3store.NewStore(awss3.NewFromConfig(cfg), u.Host, ""), key, nil
}

func resolveMinio(ref string) (blobstore.BlobStore, string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, "", err
	}

	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if u.Host == "" || len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, "", fmt.Errorf("invalid MinIO reference %q: want minio://endpoint/bucket/key", ref)
	}

	client, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewEnvMinio(),
		Secure: u.Query().Get("insecure") != "true",
	})
	if err != nil {
		return nil, "", err
	}

	return miniostore.NewStore(client, parts[0], ""), parts[1], nil
}
