package compose

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairs(t *testing.T) {
	tests := []struct {
		n    int
		want []Pair
	}{
		{0, []Pair{{0, 0}}},
		{1, []Pair{{0, 1}, {1, 0}}},
		{2, []Pair{{0, 2}, {1, 1}, {2, 0}}},
		{3, []Pair{{0, 3}, {1, 2}, {2, 1}, {3, 0}}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("compose2 %d", tt.n), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Pairs(tt.n)); diff != "" {
				t.Errorf("Pairs(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestCompose2Properties(t *testing.T) {
	for n := 0; n < 64; n++ {
		pairs := Pairs(n)
		require.Len(t, pairs, n+1)
		require.Equal(t, Count(n), len(pairs))
		for k, p := range pairs {
			assert.Equal(t, n, p.I+p.J)
			assert.Equal(t, k, p.I, "pairs must ascend in I")
			assert.GreaterOrEqual(t, p.J, 0)
		}
	}
}

func TestCompose2Negative(t *testing.T) {
	assert.Empty(t, Pairs(-1))
	assert.Equal(t, 0, Count(-3))
}

func TestCompose2Restartable(t *testing.T) {
	seq := Compose2(5)

	var first, second []Pair
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}
	require.Equal(t, first, second)
}

func TestCompose2EarlyBreak(t *testing.T) {
	var got []Pair
	for p := range Compose2(10) {
		if p.I == 3 {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []Pair{{0, 10}, {1, 9}, {2, 8}}, got)
}
