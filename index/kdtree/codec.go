package kdtree

import (
	"bufio"
	"bytes"
	"encoding"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/kdgo/index"
)

// Compile-time checks to ensure Tree satisfies the text codec interfaces.
var (
	_ encoding.TextMarshaler   = (*Tree)(nil)
	_ encoding.TextUnmarshaler = (*Tree)(nil)
)

// nilMarker is the sentinel line standing in for an absent node. It doubles
// as the encoding of an empty tree at the top level.
const nilMarker = "-1"

// Encode writes the tree to w in its pre-order text form. Per node: the
// split axis, the original dataset index, and the coordinates (shortest
// decimal representation that round-trips float64 exactly, single-space
// separated), each on their own line, followed by the encodings of the left
// and right children with "-1" standing in for an absent child. An empty
// tree encodes as a lone "-1" line.
func (t *Tree) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if t.root == nil {
		if _, err := fmt.Fprintln(bw, nilMarker); err != nil {
			return err
		}
		return bw.Flush()
	}

	if err := encodeNode(bw, t.root); err != nil {
		return err
	}

	return bw.Flush()
}

func encodeNode(bw *bufio.Writer, n *node) error {
	if n == nil {
		_, err := fmt.Fprintln(bw, nilMarker)
		return err
	}

	if _, err := fmt.Fprintln(bw, strconv.Itoa(n.axis)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, strconv.Itoa(n.location.Index)); err != nil {
		return err
	}

	for i, c := range n.location.Point {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.FormatFloat(c, 'g', -1, 64)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := encodeNode(bw, n.left); err != nil {
		return err
	}

	return encodeNode(bw, n.right)
}

// Decode reads a tree from its pre-order text form. A lone "-1" (or an
// immediately exhausted stream) decodes to an empty tree; end-of-input at
// any child position is treated as an absent child, so truncated files
// degrade to missing subtrees rather than failing. The dimension is
// recovered from the first node's coordinate line; every later node must
// carry the same coordinate count and a split axis inside it, so a decoded
// tree can be queried without further structural checks.
func Decode(r io.Reader) (*Tree, error) {
	d := &decoder{s: bufio.NewScanner(r)}
	d.s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	axis, err := d.readInt()
	if err != nil {
		return nil, err
	}
	if axis < 0 {
		return &Tree{}, nil
	}

	root, err := d.readNode(axis)
	if err != nil {
		return nil, err
	}

	return &Tree{
		dimension: d.dim,
		root:      root,
		size:      root.count(),
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t *Tree) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing the
// receiver's contents.
func (t *Tree) UnmarshalText(data []byte) error {
	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}

	*t = *decoded

	return nil
}

type decoder struct {
	s *bufio.Scanner

	// dim is the coordinate count of the first node, enforced on all
	// following nodes.
	dim int
}

// readInt reads a single integer line. An exhausted stream reads as -1,
// matching the encoding of an absent node.
func (d *decoder) readInt() (int, error) {
	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return 0, err
		}
		return -1, nil
	}

	line := strings.TrimSpace(d.s.Text())
	if line == "" {
		return -1, nil
	}

	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("kdtree: invalid integer line %q: %w", line, err)
	}

	return v, nil
}

// readNode reads the remainder of a node whose axis line has already been
// consumed, then its children.
func (d *decoder) readNode(axis int) (*node, error) {
	idx, err := d.readInt()
	if err != nil {
		return nil, err
	}

	if !d.s.Scan() {
		if err := d.s.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("kdtree: truncated node: missing coordinates for index %d", idx)
	}

	fields := strings.Fields(d.s.Text())
	point := make(index.Point, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("kdtree: invalid coordinate %q: %w", f, err)
		}
		point[i] = v
	}

	if len(point) == 0 {
		return nil, fmt.Errorf("kdtree: node %d: empty coordinate line", idx)
	}
	if d.dim == 0 {
		d.dim = len(point)
	} else if len(point) != d.dim {
		return nil, fmt.Errorf("kdtree: node %d: %d coordinates, want %d", idx, len(point), d.dim)
	}
	if axis >= d.dim {
		return nil, fmt.Errorf("kdtree: node %d: axis %d out of range for dimension %d", idx, axis, d.dim)
	}

	n := &node{
		axis:     axis,
		location: index.IndexedPoint{Index: idx, Point: point},
	}

	childAxis, err := d.readInt()
	if err != nil {
		return nil, err
	}
	if childAxis >= 0 {
		if n.left, err = d.readNode(childAxis); err != nil {
			return nil, err
		}
	}

	childAxis, err = d.readInt()
	if err != nil {
		return nil, err
	}
	if childAxis >= 0 {
		if n.right, err = d.readNode(childAxis); err != nil {
			return nil, err
		}
	}

	return n, nil
}
