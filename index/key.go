package index

import "fmt"

// Key identifies an index class.
type Key struct {
	Rank      int
	Dimension int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d", k.Rank, k.Dimension)
}

// Check returns ErrInvalidArgument if either component is negative.
func (k Key) Check() error {
	if k.Rank < 0 || k.Dimension < 0 {
		return fmt.Errorf("%w: rank=%d, dimension=%d", ErrInvalidArgument, k.Rank, k.Dimension)
	}
	return nil
}

// Feasible reports whether 3 * rank <= dimension. Classes that are not
// feasible are empty.
//
// The caller is responsible for k.Check() == nil.
func (k Key) Feasible() bool {
	return k.Rank <= k.Dimension/3
}
