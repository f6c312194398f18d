// Package kdgo provides a balanced KD-tree index for exact nearest-neighbor
// search over fixed-dimension points, with portable text persistence.
//
// The tree is built once from an immutable snapshot of the input via median
// splitting on round-robin axes, answers Euclidean nearest-neighbor queries
// with hypersphere/hyperplane pruning, and serializes to a pre-order text
// form that round-trips exactly.
//
// # Quick Start
//
//	db, err := kdgo.Build(points, kdgo.WithValidation(true))
//	if err != nil {
//	    return err
//	}
//
//	best, err := db.NearestNeighbor(kdgo.Point{2.1, 2.1})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(best.Index)
//
// Persist the tree through any blobstore:
//
//	store, _ := blobstore.NewLocalStore("./trees")
//	if err := db.Save(ctx, store, "points.kdtree.gz"); err != nil {
//	    return err
//	}
//
//	db, err = kdgo.Load(ctx, store, "points.kdtree.gz", kdgo.WithDataset(points))
//
// VerifiedNearestNeighbor cross-checks every answer against a brute-force
// scan of the original dataset, for callers that need the tree's results
// validated externally.
package kdgo
