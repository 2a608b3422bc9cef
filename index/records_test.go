package index

import (
	"testing"

	"github.com/jfine2358/go-linhomy/base36"
	"github.com/jfine2358/go-linhomy/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsRank0(t *testing.T) {
	e := newTestEngine(t)
	rs, err := e.Records(0, 7)
	require.NoError(t, err)

	require.Equal(t, 2, rs.Width)
	require.Equal(t, []byte{0, 7, 1, 5, 2, 3, 3, 1}, rs.Records)
	require.Equal(t, 4, rs.Len())
	require.NoError(t, e.Verify(rs))

	s, err := rs.Base36()
	require.NoError(t, err)
	require.Equal(t, "07152331", s)
}

func TestRecordsRank0Sizes(t *testing.T) {
	e := newTestEngine(t)
	for d := 0; d < 36; d++ {
		rs, err := e.Records(0, d)
		require.NoError(t, err)
		count, err := e.Size(0, d)
		require.NoError(t, err)
		require.Equal(t, RecordBytes(0, count), uint64(len(rs.Records)))

		for i, rec := range chunk.Chunks(rs.Width, rs.Records) {
			assert.Equal(t, byte(i), rec[0])
			assert.Equal(t, d, int(rec[0])*2+int(rec[1]), "record %d of dimension %d", i, d)
		}
	}
}

func TestRecordsRank0TooWide(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Records(0, 256)
	require.ErrorIs(t, err, ErrSizeOverflow)

	// rejected before any buffer is sized for the class
	_, err = e.Records(0, 1<<40)
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestRecordsAllocationBound(t *testing.T) {
	e := newTestEngine(t)

	count, err := e.Size(1, 1_000_000)
	require.NoError(t, err)
	require.Greater(t, RecordBytes(1, count), uint64(MaxRecordBytes))

	_, err = e.Records(1, 1_000_000)
	require.ErrorIs(t, err, ErrSizeOverflow)

	called := false
	e = newTestEngine(t, WithGenerator(func(Key, uint64, []byte) error {
		called = true
		return nil
	}))
	_, err = e.Records(2, 400)
	require.ErrorIs(t, err, ErrSizeOverflow)
	require.False(t, called, "the generator must not see an oversized class")
}

func TestRecordsNilGenerator(t *testing.T) {
	e := newTestEngine(t, WithGenerator(nil))
	_, err := e.Records(1, 5)
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestRecordsInvalidArgument(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Records(-1, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = e.Records(0, -3)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRecordsNotImplemented(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Records(1, 5)
	require.ErrorIs(t, err, ErrNotImplemented)

	// an empty class needs no layout
	rs, err := e.Records(2, 5)
	require.NoError(t, err)
	require.Empty(t, rs.Records)
	require.Equal(t, 4, rs.Width)
}

func TestRecordsGenerator(t *testing.T) {
	var gotKey Key
	var gotCount uint64
	var gotLen int
	fill := func(k Key, count uint64, buf []byte) error {
		gotKey, gotCount, gotLen = k, count, len(buf)
		w := RecordWidth(k.Rank)
		for i := 0; i < int(count); i++ {
			buf[i*w] = byte(i)
		}
		return nil
	}

	e := newTestEngine(t, WithGenerator(fill))
	rs, err := e.Records(2, 9)
	require.NoError(t, err)

	require.Equal(t, Key{Rank: 2, Dimension: 9}, gotKey)
	require.Equal(t, uint64(9), gotCount)
	require.Equal(t, 2*2*9, gotLen)
	require.NoError(t, e.Verify(rs))
	require.Equal(t, 9, rs.Len())
}

func TestRecordsSearch(t *testing.T) {
	e := newTestEngine(t)
	rs, err := e.Records(0, 30)
	require.NoError(t, err)

	v, err := rs.View()
	require.NoError(t, err)
	require.Equal(t, 16, v.Len())

	for i := 0; i < v.Len(); i++ {
		got, ok := chunk.Search(v, []byte{byte(i)})
		require.True(t, ok)
		require.Equal(t, i, got)
		require.Equal(t, []byte{byte(i), byte(30 - 2*i)}, v.At(got))
	}
	got, ok := chunk.Search(v, []byte{16})
	require.False(t, ok)
	require.Equal(t, v.Len(), got)

	// the same search over the base-36 rendering
	s, err := rs.Base36()
	require.NoError(t, err)
	sv, err := chunk.NewView(rs.Width, s)
	require.NoError(t, err)
	for i := 0; i < sv.Len(); i++ {
		c, _ := base36.Char(byte(i))
		got, ok := chunk.Search(sv, string([]byte{c}))
		require.True(t, ok)
		require.Equal(t, i, got)
	}
}

func TestVerifyRejects(t *testing.T) {
	e := newTestEngine(t)
	rs, err := e.Records(0, 6)
	require.NoError(t, err)

	short := rs
	short.Records = rs.Records[:len(rs.Records)-2]
	require.ErrorIs(t, e.Verify(short), ErrBadRecordSet)

	ragged := rs
	ragged.Records = rs.Records[:len(rs.Records)-1]
	require.ErrorIs(t, e.Verify(ragged), ErrBadRecordSet)

	wide := rs
	wide.Width = 3
	require.ErrorIs(t, e.Verify(wide), ErrBadRecordSet)
}
