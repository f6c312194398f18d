package kdgo

import (
	"github.com/hupe1980/kdgo/index"
	"github.com/hupe1980/kdgo/persistence"
)

type options struct {
	logger               *Logger
	validate             bool
	dataset              []index.Point
	keepMedianDuplicates bool
	compression          persistence.Compression
}

// Option configures Build/Load behavior.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, a no-op logger is
// used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithValidation retains the build input for brute-force cross-checking via
// VerifiedNearestNeighbor. On Build, the dataset is the build input itself;
// on Load, combine with WithDataset.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithDataset supplies the original dataset a loaded tree was built from,
// enabling VerifiedNearestNeighbor on loaded trees. The dataset is also the
// reference for detecting coordinate drift after deserialization.
func WithDataset(points []index.Point) Option {
	return func(o *options) {
		o.dataset = points
		o.validate = true
	}
}

// WithKeepMedianDuplicates builds trees with the historical behavior of
// storing the median both at its node and within the right subtree. See
// kdtree.Options.KeepMedianDuplicates.
func WithKeepMedianDuplicates() Option {
	return func(o *options) {
		o.keepMedianDuplicates = true
	}
}

// WithCompression selects the at-rest compression used by Save. Without it,
// Save infers compression from the blob name's extension.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
