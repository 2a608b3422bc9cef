package index

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/jfine2358/go-linhomy/base36"
	"github.com/jfine2358/go-linhomy/chunk"
)

// RecordSet is the serialized form of every index in one class.
type RecordSet struct {
	Rank      int    `cbor:"1,keyasint"`
	Dimension int    `cbor:"2,keyasint"`
	Width     int    `cbor:"3,keyasint"`
	Records   []byte `cbor:"4,keyasint"`
}

// MaxRecordBytes bounds the buffer Records will allocate for one class.
const MaxRecordBytes = 1 << 30

// RecordWidth returns the byte width of one record of the given rank.
func RecordWidth(rank int) int {
	if rank == 0 {
		return 2
	}
	return 2 * rank
}

// RecordBytes returns the buffer size for count records of the given rank.
func RecordBytes(rank int, count uint64) uint64 {
	return uint64(RecordWidth(rank)) * count
}

// Key returns the class of the set.
func (rs RecordSet) Key() Key {
	return Key{Rank: rs.Rank, Dimension: rs.Dimension}
}

// Len returns the number of records in the set.
func (rs RecordSet) Len() int {
	if rs.Width <= 0 {
		return 0
	}
	return len(rs.Records) / rs.Width
}

// View returns a zero-copy chunked view of the records.
func (rs RecordSet) View() (chunk.View[[]byte], error) {
	return chunk.NewView(rs.Width, rs.Records)
}

// Base36 renders the records buffer in base-36, one character per byte.
func (rs RecordSet) Base36() (string, error) {
	return base36.Encode(rs.Records)
}

// Check verifies the set is internally consistent: a well formed class, the
// width for its rank, and a whole number of records.
func (rs RecordSet) Check() error {
	if err := rs.Key().Check(); err != nil {
		return err
	}
	if want := RecordWidth(rs.Rank); rs.Width != want {
		return fmt.Errorf("%w: width %d, want %d for rank %d", ErrBadRecordSet, rs.Width, want, rs.Rank)
	}
	if len(rs.Records)%rs.Width != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of %d byte records",
			ErrBadRecordSet, len(rs.Records), rs.Width)
	}
	return nil
}

// Records produces the record set for the class.
//
// For rank 0 record i is (i, dimension - 2i). For rank >= 1 the buffer is
// filled by the configured Generator.
func (e *Engine) Records(rank, dimension int) (RecordSet, error) {
	k := Key{Rank: rank, Dimension: dimension}
	if err := k.Check(); err != nil {
		return RecordSet{}, err
	}
	count, err := e.size(k)
	if err != nil {
		return RecordSet{}, err
	}

	if rank == 0 && dimension > math.MaxUint8 {
		return RecordSet{}, fmt.Errorf("%w: dimension %d does not fit a record byte", ErrSizeOverflow, dimension)
	}

	rs := RecordSet{Rank: rank, Dimension: dimension, Width: RecordWidth(rank)}

	hi, n := bits.Mul64(uint64(rs.Width), count)
	if hi != 0 || n > MaxRecordBytes {
		return RecordSet{}, fmt.Errorf("%w: %d records of class %s exceed %d bytes",
			ErrSizeOverflow, count, k, MaxRecordBytes)
	}
	rs.Records = make([]byte, n)
	if count == 0 {
		return rs, nil
	}

	if rank == 0 {
		for i := 0; i < int(count); i++ {
			rs.Records[2*i] = byte(i)
			rs.Records[2*i+1] = byte(dimension - 2*i)
		}
		return rs, nil
	}

	if err := e.opts.generator(k, count, rs.Records); err != nil {
		e.infof("records: class %s: %v", k, err)
		return RecordSet{}, err
	}
	return rs, nil
}

// Verify checks rs against the engine's count for its class.
func (e *Engine) Verify(rs RecordSet) error {
	if err := rs.Check(); err != nil {
		return err
	}
	count, err := e.size(rs.Key())
	if err != nil {
		return err
	}
	if uint64(rs.Len()) != count {
		return fmt.Errorf("%w: class %s has %d records, want %d", ErrBadRecordSet, rs.Key(), rs.Len(), count)
	}
	return nil
}
