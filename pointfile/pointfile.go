// Package pointfile reads point datasets and writes query result files.
//
// The dataset format is one point per line, coordinates separated by
// whitespace and/or commas. The dimension is fixed by the first line; a line
// with a different coordinate count is a hard error. Blank lines are
// skipped. The results format is one original-dataset index per line, in
// query order.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/hupe1980/kdgo/index"
)

// ReadPoints reads a point dataset from r. It returns
// index.ErrEmptyDataset when no point lines are present and
// *index.ErrDimensionMismatch when a line's coordinate count differs from
// the first line's.
func ReadPoints(r io.Reader) ([]index.Point, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var points []index.Point
	dim := 0
	lineNo := 0

	for s.Scan() {
		lineNo++

		fields := splitFields(s.Text())
		if len(fields) == 0 {
			continue
		}

		p := make(index.Point, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("pointfile: line %d: invalid coordinate %q: %w", lineNo, f, err)
			}
			p[i] = v
		}

		if dim == 0 {
			dim = len(p)
		} else if len(p) != dim {
			return nil, fmt.Errorf("pointfile: line %d: %w", lineNo,
				&index.ErrDimensionMismatch{Expected: dim, Actual: len(p)})
		}

		points = append(points, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, index.ErrEmptyDataset
	}

	return points, nil
}

// ReadPointsFile reads a point dataset from the named file.
func ReadPointsFile(path string) ([]index.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// splitFields splits a dataset line on commas and/or whitespace.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// WriteResults writes one nearest-neighbor index per line, preserving
// query order.
func WriteResults(w io.Writer, indexes []int) error {
	bw := bufio.NewWriter(w)

	for _, idx := range indexes {
		if _, err := fmt.Fprintln(bw, idx); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteResultsFile writes a results file atomically: results land in a
// temporary file that is renamed into place only when every line has been
// written, so a failed run leaves no partial results behind.
func WriteResultsFile(path string, indexes []int) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if err := WriteResults(tmp, indexes); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
