package blobstore

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// Compile-time check to ensure MemoryStore satisfies the BlobStore interface.
var _ BlobStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory BlobStore implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a new in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Open opens a blob for reading.
func (m *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy to prevent mutation while a reader is open.
	copied := make([]byte, len(data))
	copy(copied, data)

	return io.NopCloser(bytes.NewReader(copied)), nil
}

// Create creates a new writable blob. The blob is stored on Close.
func (m *MemoryStore) Create(_ context.Context, name string) (io.WriteCloser, error) {
	return &memoryWritableBlob{store: m, name: name}, nil
}

// Delete removes a blob.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)

	return nil
}

// List returns all blob names with the given prefix, sorted.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// memoryWritableBlob implements io.WriteCloser for in-memory writes.
type memoryWritableBlob struct {
	store *MemoryStore
	name  string
	buf   bytes.Buffer
}

func (w *memoryWritableBlob) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memoryWritableBlob) Close() error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	data := make([]byte, w.buf.Len())
	copy(data, w.buf.Bytes())
	w.store.blobs[w.name] = data

	return nil
}
