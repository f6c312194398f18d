// Package persistence saves and loads serialized KD-trees through a
// blobstore, optionally compressing them at rest.
package persistence

import (
	"context"

	"github.com/hupe1980/kdgo/blobstore"
	"github.com/hupe1980/kdgo/index/kdtree"
)

// Options contains configuration options for the persistence manager.
type Options struct {
	// Compression selects the at-rest compression for saved trees.
	// When left at CompressionNone, SaveTree still honors a compression
	// implied by the blob name's extension (".gz", ".lz4").
	Compression Compression
}

// DefaultOptions contains the default configuration options for the
// persistence manager.
var DefaultOptions = Options{
	Compression: CompressionNone,
}

// Manager reads and writes serialized trees through a BlobStore.
type Manager struct {
	store blobstore.BlobStore
	opts  Options
}

// NewManager creates a new persistence manager on top of store.
func NewManager(store blobstore.BlobStore, optFns ...func(o *Options)) *Manager {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Manager{store: store, opts: opts}
}

// compressionFor resolves the effective compression for a blob name.
func (m *Manager) compressionFor(name string) Compression {
	if m.opts.Compression != CompressionNone {
		return m.opts.Compression
	}

	return CompressionForName(name)
}

// SaveTree encodes the tree into the named blob. The blob only becomes
// visible once the encoding has been written completely.
func (m *Manager) SaveTree(ctx context.Context, name string, t *kdtree.Tree) error {
	wc, err := m.store.Create(ctx, name)
	if err != nil {
		return err
	}

	cw, err := m.compressionFor(name).wrapWriter(wc)
	if err != nil {
		wc.Close()
		return err
	}

	if err := t.Encode(cw); err != nil {
		cw.Close()
		wc.Close()
		return err
	}

	if err := cw.Close(); err != nil {
		wc.Close()
		return err
	}

	return wc.Close()
}

// LoadTree decodes a tree from the named blob.
func (m *Manager) LoadTree(ctx context.Context, name string) (*kdtree.Tree, error) {
	rc, err := m.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr, err := m.compressionFor(name).wrapReader(rc)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	return kdtree.Decode(cr)
}
