package persistence

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how serialized trees are compressed at rest.
type Compression int

const (
	// CompressionNone stores the plain text encoding.
	CompressionNone Compression = iota

	// CompressionGzip wraps the encoding in a gzip stream.
	CompressionGzip

	// CompressionLZ4 wraps the encoding in an LZ4 frame.
	CompressionLZ4
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ParseCompression parses a compression name ("none", "gzip", "lz4").
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, fmt.Errorf("persistence: unknown compression %q", s)
	}
}

// CompressionForName infers the compression from a blob name's extension.
// Unrecognized extensions mean no compression.
func CompressionForName(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// wrapWriter layers the compression onto w. The returned closer must be
// closed before w.
func (c Compression) wrapWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("persistence: unknown compression %d", int(c))
	}
}

// wrapReader layers the decompression onto r.
func (c Compression) wrapReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("persistence: unknown compression %d", int(c))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
