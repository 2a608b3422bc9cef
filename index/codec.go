package index

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec exchanges record sets as deterministic CBOR.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCodec returns a Codec using core deterministic encoding.
func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

// MarshalRecordSet checks rs and encodes it.
func (c Codec) MarshalRecordSet(rs RecordSet) ([]byte, error) {
	if err := rs.Check(); err != nil {
		return nil, err
	}
	return c.enc.Marshal(rs)
}

// UnmarshalRecordSet decodes data and checks the result is consistent.
func (c Codec) UnmarshalRecordSet(data []byte) (RecordSet, error) {
	var rs RecordSet
	if err := c.dec.Unmarshal(data, &rs); err != nil {
		return RecordSet{}, fmt.Errorf("%w: %v", ErrBadRecordSet, err)
	}
	if err := rs.Check(); err != nil {
		return RecordSet{}, err
	}
	return rs, nil
}
