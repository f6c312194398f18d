package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Compile-time check to ensure LocalStore satisfies the BlobStore interface.
var _ BlobStore = (*LocalStore)(nil)

// LocalStore implements BlobStore using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
// The directory is created if it does not exist.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return &LocalStore{root: root}, nil
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open opens a blob for reading.
func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Create creates a blob for writing. The blob is written to a temporary
// file and renamed into place on Close, so readers never observe a
// partially-written blob.
func (s *LocalStore) Create(_ context.Context, name string) (io.WriteCloser, error) {
	path := s.path(name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}

	return &localWritableBlob{f: tmp, final: path}, nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (s *LocalStore) Delete(_ context.Context, name string) error {
	err := os.Remove(s.path(name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}

	return err
}

// List returns all blob names with the given prefix, sorted.
func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}

		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	return names, nil
}

// localWritableBlob writes to a temp file and renames on Close.
type localWritableBlob struct {
	f     *os.File
	final string
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *localWritableBlob) Close() error {
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		os.Remove(w.f.Name())
		return err
	}

	if err := w.f.Close(); err != nil {
		os.Remove(w.f.Name())
		return err
	}

	return os.Rename(w.f.Name(), w.final)
}
