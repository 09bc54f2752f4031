package complexity

import "math"

// ShannonEntropy returns the Shannon entropy of data in bits per byte,
// in [0, 8]. An empty sequence has entropy 0.
//
// The histogram bins are accumulated in fixed byte-value order, so the
// result is bit-for-bit reproducible for identical input.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var counts [256]uint32
	for _, b := range data {
		counts[b]++
	}

	n := float64(len(data))
	entropy := 0.0
	for _, count := range counts {
		if count > 0 {
			p := float64(count) / n
			entropy -= p * math.Log2(p)
		}
	}

	return entropy
}
