package kdgo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/kdgo/blobstore"
	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/index/flat"
	"github.com/hupe1980/kdgo/index/kdtree"
	"github.com/hupe1980/kdgo/metric"
	"github.com/hupe1980/kdgo/persistence"
)

// Point is an ordered sequence of coordinates.
type Point = index.Point

// IndexedPoint pairs a point with its position in the original dataset.
type IndexedPoint = index.IndexedPoint

// KDGo couples a KD-tree with optional brute-force validation and
// persistence. It is read-only after construction and safe for concurrent
// readers.
type KDGo struct {
	tree        *kdtree.Tree
	brute       *flat.Flat
	dataset     []index.Point
	logger      *Logger
	compression persistence.Compression
}

func newOptions(optFns []Option) *options {
	o := &options{
		logger: NoopLogger(),
	}

	for _, fn := range optFns {
		fn(o)
	}

	return o
}

// Build constructs a balanced KD-tree from points. The input is copied and
// never mutated. It fails with ErrEmptyDataset on an empty input and
// *index.ErrDimensionMismatch on inconsistent point lengths.
func Build(points []Point, optFns ...Option) (*KDGo, error) {
	o := newOptions(optFns)

	var treeOpts []func(*kdtree.Options)
	if o.keepMedianDuplicates {
		treeOpts = append(treeOpts, func(to *kdtree.Options) {
			to.KeepMedianDuplicates = true
		})
	}

	tree, err := kdtree.Build(points, treeOpts...)
	if err != nil {
		o.logger.LogBuild(context.Background(), len(points), 0, err)
		return nil, err
	}
	o.logger.LogBuild(context.Background(), len(points), tree.Dimension(), nil)

	g := &KDGo{
		tree:        tree,
		logger:      o.logger,
		compression: o.compression,
	}

	if o.validate {
		dataset := o.dataset
		if dataset == nil {
			dataset = points
		}
		if err := g.attachDataset(dataset); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Load reads a serialized tree from the named blob. Pass WithDataset to
// enable VerifiedNearestNeighbor on the loaded tree.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*KDGo, error) {
	o := newOptions(optFns)

	manager := persistence.NewManager(store, func(po *persistence.Options) {
		po.Compression = o.compression
	})

	tree, err := manager.LoadTree(ctx, name)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}
	o.logger.LogLoad(ctx, name, tree.Len(), nil)

	g := &KDGo{
		tree:        tree,
		logger:      o.logger,
		compression: o.compression,
	}

	if o.dataset != nil {
		if err := g.attachDataset(o.dataset); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *KDGo) attachDataset(points []index.Point) error {
	brute, err := flat.FromPoints(points)
	if err != nil {
		return err
	}

	g.brute = brute
	g.dataset = points

	return nil
}

// Save encodes the tree into the named blob of store, compressing per the
// configured compression or the blob name's extension.
func (g *KDGo) Save(ctx context.Context, store blobstore.BlobStore, name string) error {
	manager := persistence.NewManager(store, func(po *persistence.Options) {
		po.Compression = g.compression
	})

	err := manager.SaveTree(ctx, name, g.tree)
	g.logger.LogSave(ctx, name, err)

	return err
}

// Tree returns the underlying KD-tree.
func (g *KDGo) Tree() *kdtree.Tree {
	return g.tree
}

// Dimension returns the coordinate count shared by all indexed points.
func (g *KDGo) Dimension() int {
	return g.tree.Dimension()
}

// Len returns the number of nodes in the tree.
func (g *KDGo) Len() int {
	return g.tree.Len()
}

// NearestNeighbor returns the indexed point with minimal Euclidean distance
// to q.
func (g *KDGo) NearestNeighbor(q Point) (IndexedPoint, error) {
	best, err := g.tree.NearestNeighbor(q)
	g.logger.LogQuery(context.Background(), best.Index, err)

	return best, err
}

// VerifiedNearestNeighbor answers q from the tree and cross-checks the
// result against a brute-force scan of the reference dataset: the indices
// must agree and the tree's result coordinates must match the dataset row
// exactly. A disagreement is reported as *ErrValidationMismatch.
//
// It requires a dataset, configured via WithValidation on Build or
// WithDataset on Load.
func (g *KDGo) VerifiedNearestNeighbor(q Point) (IndexedPoint, error) {
	if g.brute == nil {
		return index.Sentinel(), ErrNoDataset
	}

	best, err := g.tree.NearestNeighbor(q)
	if err != nil {
		return best, err
	}

	bruteBest, err := g.brute.NearestNeighbor(q)
	if err != nil {
		return index.Sentinel(), fmt.Errorf("brute-force reference: %w", err)
	}

	if best.Index != bruteBest.Index {
		return index.Sentinel(), &ErrValidationMismatch{
			Query:       q,
			TreeResult:  best,
			BruteResult: bruteBest,
		}
	}

	// Same index: the points must still be compared, in case a
	// deserialized tree carries drifted coordinates.
	row := g.dataset[bruteBest.Index]
	if len(best.Point) != len(row) {
		return index.Sentinel(), &ErrValidationMismatch{
			Query:       q,
			TreeResult:  best,
			BruteResult: bruteBest,
			L1:          math.Inf(1),
		}
	}
	if l1 := metric.L1(best.Point, row); l1 > 0 {
		return index.Sentinel(), &ErrValidationMismatch{
			Query:       q,
			TreeResult:  best,
			BruteResult: bruteBest,
			L1:          l1,
		}
	}

	return best, nil
}
