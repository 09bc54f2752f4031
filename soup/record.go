package soup

import (
	"encoding/binary"
	"fmt"

	"github.com/chazu/turingsoup/vm"
)

// ---------------------------------------------------------------------------
// Record format
// ---------------------------------------------------------------------------

// RecordHeaderSize is the size of the statistics header preceding the tape
// bytes in a serialized record: seven little-endian u32 values.
//
//	offset 0  : steps
//	offset 4  : head0 count
//	offset 8  : head1 count
//	offset 12 : math count
//	offset 16 : copy count
//	offset 20 : loop count
//	offset 24 : halt reason
//	offset 28 : mutated tape bytes
const RecordHeaderSize = 28

// RecordSize returns the total serialized size of one pair record for the
// given region size.
func RecordSize(regionSize int) int {
	return RecordHeaderSize + 2*regionSize
}

// Record is the decoded form of one pair-execution record.
type Record struct {
	Result vm.Result `cbor:"result"`
	Tape   []byte    `cbor:"tape"`
}

// AppendRecord serializes result and tape onto dst in the fixed binary
// layout and returns the extended slice.
func AppendRecord(dst []byte, result vm.Result, tape []byte) []byte {
	var header [RecordHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], result.Steps)
	binary.LittleEndian.PutUint32(header[4:], result.Head0Count)
	binary.LittleEndian.PutUint32(header[8:], result.Head1Count)
	binary.LittleEndian.PutUint32(header[12:], result.MathCount)
	binary.LittleEndian.PutUint32(header[16:], result.CopyCount)
	binary.LittleEndian.PutUint32(header[20:], result.LoopCount)
	binary.LittleEndian.PutUint32(header[24:], uint32(result.Halt))

	dst = append(dst, header[:]...)
	return append(dst, tape...)
}

// EncodeRecord serializes a record into the fixed binary layout.
func EncodeRecord(r *Record) []byte {
	return AppendRecord(make([]byte, 0, RecordHeaderSize+len(r.Tape)), r.Result, r.Tape)
}

// DecodeRecord parses one serialized record. Everything past the statistics
// header is the mutated tape; the tape slice is copied out of data.
func DecodeRecord(data []byte) (*Record, error) {
	if len(data) < RecordHeaderSize {
		return nil, fmt.Errorf("soup: record too short (%d bytes, need at least %d)", len(data), RecordHeaderSize)
	}

	r := &Record{
		Result: vm.Result{
			Steps:      binary.LittleEndian.Uint32(data[0:]),
			Head0Count: binary.LittleEndian.Uint32(data[4:]),
			Head1Count: binary.LittleEndian.Uint32(data[8:]),
			MathCount:  binary.LittleEndian.Uint32(data[12:]),
			CopyCount:  binary.LittleEndian.Uint32(data[16:]),
			LoopCount:  binary.LittleEndian.Uint32(data[20:]),
			Halt:       vm.HaltReason(binary.LittleEndian.Uint32(data[24:])),
		},
		Tape: append([]byte(nil), data[RecordHeaderSize:]...),
	}
	return r, nil
}

// DecodeRecords splits a concatenated batch output into individual records.
// The buffer length must be an exact multiple of the record size for the
// given region size.
func DecodeRecords(data []byte, regionSize int) ([]*Record, error) {
	if regionSize <= 0 {
		return nil, fmt.Errorf("soup: region size must be positive, got %d", regionSize)
	}
	size := RecordSize(regionSize)
	if len(data)%size != 0 {
		return nil, fmt.Errorf("soup: batch output length %d is not a multiple of record size %d", len(data), size)
	}

	records := make([]*Record, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		r, err := DecodeRecord(data[off : off+size])
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
