package soup

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/chazu/turingsoup/vm"
)

var log = commonlog.GetLogger("soup")

// pairStride is the size of one slot-index pair in a batch input buffer:
// two little-endian u32 values.
const pairStride = 8

// Options configures pair and batch execution.
type Options struct {
	// RegionSize is the length in bytes of one soup region. The combined
	// tape of a pair is twice this.
	RegionSize int

	// Head1Offset is the initial write-head position on the combined
	// tape. The conventional choice is RegionSize, the seam between the
	// two regions.
	Head1Offset int

	// MaxSteps is the per-execution step budget.
	MaxSteps uint32
}

// DefaultOptions returns the conventional execution options: 64-byte
// regions, head1 on the seam, the default vm step budget.
func DefaultOptions() Options {
	return Options{
		RegionSize:  64,
		Head1Offset: 64,
		MaxSteps:    vm.MaxSteps,
	}
}

func (o Options) validate(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("soup: empty soup buffer")
	}
	if o.RegionSize <= 0 {
		return fmt.Errorf("soup: region size must be positive, got %d", o.RegionSize)
	}
	return nil
}

// ExtractRegion copies size bytes out of the soup starting at start,
// wrapping per-byte around the soup boundary. This wrapping is independent
// of the engine's own head wrapping on the combined tape. The soup must be
// non-empty.
func ExtractRegion(soup []byte, start uint32, size int) []byte {
	region := make([]byte, size)
	base := int(start) % len(soup)
	for i := range region {
		region[i] = soup[(base+i)%len(soup)]
	}
	return region
}

// combineRegions builds the 2*regionSize tape for a pair: region A's bytes
// followed by region B's.
func combineRegions(soup []byte, slotA, slotB uint32, regionSize int) []byte {
	combined := make([]byte, 0, 2*regionSize)
	combined = append(combined, ExtractRegion(soup, slotA, regionSize)...)
	combined = append(combined, ExtractRegion(soup, slotB, regionSize)...)
	return combined
}

// ExecutePair extracts the regions at slotA and slotB, runs the engine over
// their concatenation, and returns the serialized record: the statistics
// header followed by the mutated combined tape. The soup itself is not
// modified.
func ExecutePair(soupBuf []byte, slotA, slotB uint32, opts Options) ([]byte, error) {
	if err := opts.validate(soupBuf); err != nil {
		return nil, err
	}

	combined := combineRegions(soupBuf, slotA, slotB, opts.RegionSize)
	result := vm.ExecuteWithParams(combined, vm.Params{
		Head1Start: opts.Head1Offset,
		MaxSteps:   opts.MaxSteps,
	})

	return AppendRecord(make([]byte, 0, RecordSize(opts.RegionSize)), result, combined), nil
}

// ExecuteBatch runs one pair execution per 8-byte group in pairs, in input
// order, and returns the concatenated records. Each group holds two
// little-endian u32 slot indices; trailing bytes that do not form a
// complete group are ignored.
func ExecuteBatch(soupBuf []byte, pairs []byte, opts Options) ([]byte, error) {
	if err := opts.validate(soupBuf); err != nil {
		return nil, err
	}

	numPairs := len(pairs) / pairStride
	runID := uuid.NewString()
	log.Debugf("batch %s: %d pairs, region size %d, budget %d",
		runID, numPairs, opts.RegionSize, opts.MaxSteps)

	output := make([]byte, 0, numPairs*RecordSize(opts.RegionSize))
	for i := 0; i < numPairs; i++ {
		offset := i * pairStride
		slotA := binary.LittleEndian.Uint32(pairs[offset:])
		slotB := binary.LittleEndian.Uint32(pairs[offset+4:])

		record, err := ExecutePair(soupBuf, slotA, slotB, opts)
		if err != nil {
			return nil, fmt.Errorf("soup: batch %s pair %d: %w", runID, i, err)
		}
		output = append(output, record...)
	}

	return output, nil
}
