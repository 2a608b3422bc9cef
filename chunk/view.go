package chunk

import (
	"errors"
	"fmt"
	"sort"
)

var ErrBadWidth = errors.New("chunk: width must be > 0")

// Bytes is the set of buffer types a View can borrow.
type Bytes interface {
	~[]byte | ~string
}

// View is a zero-copy random access view over fixed width chunks of buf.
type View[S Bytes] struct {
	Width int
	Buf   S
}

// NewView returns a View of buf in chunks of width bytes.
func NewView[S Bytes](width int, buf S) (View[S], error) {
	if width <= 0 {
		return View[S]{}, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	return View[S]{Width: width, Buf: buf}, nil
}

// Len returns ceil(len(buf) / width).
func (v View[S]) Len() int {
	return (len(v.Buf) + v.Width - 1) / v.Width
}

// At returns chunk i, clipped to the end of the buffer.
//
// The caller is responsible for 0 <= i < Len().
func (v View[S]) At(i int) S {
	lo := i * v.Width
	hi := min(lo+v.Width, len(v.Buf))
	return v.Buf[lo:hi]
}

// Search binary searches the view for the first chunk whose leading
// len(key) bytes are >= key. It returns that chunk's index (Len() if there is
// none) and whether its leading bytes equal key.
//
// The chunks must be sorted by their leading bytes.
func Search[S Bytes](v View[S], key S) (int, bool) {
	n := v.Len()
	i := sort.Search(n, func(i int) bool {
		return ComparePrefix(v.At(i), key) >= 0
	})
	return i, i < n && ComparePrefix(v.At(i), key) == 0
}

// ComparePrefix compares the leading len(key) bytes of c with key, as
// bytes.Compare would. A c shorter than key that matches as far as it goes
// sorts before key.
func ComparePrefix[S Bytes](c, key S) int {
	n := min(len(c), len(key))
	for i := 0; i < n; i++ {
		switch {
		case c[i] < key[i]:
			return -1
		case c[i] > key[i]:
			return 1
		}
	}
	if len(c) < len(key) {
		return -1
	}
	return 0
}
