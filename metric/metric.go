// Package metric provides distance calculations on coordinate vectors.
package metric

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var dist float64
	for i := range a {
		d := a[i] - b[i]
		dist += d * d
	}

	return dist
}

// L1 calculates the L1 (Manhattan) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L1(a, b []float64) float64 {
	var dist float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		dist += d
	}

	return dist
}
