package complexity

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
)

// CompressionLevel is the pinned deflate level for complexity estimates.
// Scores are only comparable across runs if the compressor and level never
// change, so this is a constant, not a knob.
const CompressionLevel = 6

// CompressedSize returns the raw deflate length of data at the pinned
// level. Hosts comparing compression cost before and after a mutation can
// use this directly without float round-trips.
func CompressedSize(data []byte) int {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, CompressionLevel)
	if err != nil {
		// The level is a valid constant; NewWriter cannot fail.
		panic(fmt.Sprintf("complexity: flate writer: %v", err))
	}
	w.Write(data)
	w.Close()
	return buf.Len()
}

// KolmogorovEstimate returns a compression-based estimate of the
// algorithmic complexity of data, in estimated bits per original byte.
// Repetitive or trivial sequences score low; high-entropy or structurally
// rich sequences approach 8. Empty input scores 0.
//
// This is a proxy, not true Kolmogorov complexity (which is uncomputable).
func KolmogorovEstimate(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return float64(CompressedSize(data)*8) / float64(len(data))
}
