package kdtree

// Options contains configuration options for building a KD-tree.
type Options struct {
	// KeepMedianDuplicates reproduces the historical build behavior in
	// which the median element is stored at a node and additionally
	// re-enters the right sub-range, so the same input point can occupy
	// two tree locations. Nearest-neighbor answers are unaffected
	// (duplicates agree in distance) but the tree is larger.
	//
	// Enable this only when serialized trees must match files produced
	// by systems that carried the duplication.
	KeepMedianDuplicates bool
}

// DefaultOptions contains the default configuration options for the KD-tree.
// The median element is stored exactly once.
var DefaultOptions = Options{
	KeepMedianDuplicates: false,
}
