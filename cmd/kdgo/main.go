// Command kdgo builds balanced KD-trees from point datasets, serializes
// them, and answers nearest-neighbor queries validated against a
// brute-force reference.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
