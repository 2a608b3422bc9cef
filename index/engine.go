package index

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/jfine2358/go-linhomy/compose"
	"golang.org/x/sync/singleflight"
)

// rankStep is the dimension consumed by each step up in rank.
const rankStep = 3

// Engine computes index class sizes, memoizing every class it visits.
type Engine struct {
	log  logger.Logger
	opts Options

	mu    sync.RWMutex
	cache map[Key]uint64
	group singleflight.Group
}

// NewEngine returns an Engine with an empty cache. A nil log disables logging.
func NewEngine(log logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		log:   log,
		cache: make(map[Key]uint64),
		opts: Options{
			generator: unimplementedGenerator,
		},
	}
	for _, o := range opts {
		o(&e.opts)
	}
	return e
}

// Size returns the number of indexes of the given rank and dimension.
func (e *Engine) Size(rank, dimension int) (uint64, error) {
	k := Key{Rank: rank, Dimension: dimension}
	if err := k.Check(); err != nil {
		return 0, err
	}
	return e.size(k)
}

// Cached returns the memoized size for the class, if it has been computed.
func (e *Engine) Cached(rank, dimension int) (uint64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.cache[Key{Rank: rank, Dimension: dimension}]
	return v, ok
}

// CacheLen returns the number of memoized classes.
func (e *Engine) CacheLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Table returns size(r, d) for r = 0..maxRank and d = 0..maxDimension,
// indexed [r][d].
func (e *Engine) Table(maxRank, maxDimension int) ([][]uint64, error) {
	if err := (Key{Rank: maxRank, Dimension: maxDimension}).Check(); err != nil {
		return nil, err
	}
	rows := make([][]uint64, maxRank+1)
	for r := range rows {
		rows[r] = make([]uint64, maxDimension+1)
		for d := range rows[r] {
			v, err := e.size(Key{Rank: r, Dimension: d})
			if err != nil {
				return nil, err
			}
			rows[r][d] = v
		}
	}
	return rows, nil
}

// Total returns the sum of size(r, dimension) for r = 0..maxRank.
func (e *Engine) Total(maxRank, dimension int) (uint64, error) {
	if err := (Key{Rank: maxRank, Dimension: dimension}).Check(); err != nil {
		return 0, err
	}
	var total uint64
	for r := 0; r <= maxRank; r++ {
		v, err := e.size(Key{Rank: r, Dimension: dimension})
		if err != nil {
			return 0, err
		}
		var carry uint64
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total over ranks 0..%d at dimension %d", ErrSizeOverflow, maxRank, dimension)
		}
	}
	return total, nil
}

func (e *Engine) size(k Key) (uint64, error) {
	if v, ok := e.Cached(k.Rank, k.Dimension); ok {
		return v, nil
	}

	// Nested calls are always for a lower rank, or for rank 0 which does not
	// recurse, so a flight never waits on itself.
	v, err, _ := e.group.Do(k.String(), func() (any, error) {
		if v, ok := e.Cached(k.Rank, k.Dimension); ok {
			return v, nil
		}
		if e.opts.onCompute != nil {
			e.opts.onCompute(k)
		}
		v, err := e.compute(k)
		if err != nil {
			return uint64(0), err
		}
		e.mu.Lock()
		e.cache[k] = v
		e.mu.Unlock()
		e.debugf("size: %s = %d", k, v)
		return v, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(uint64), nil
}

func (e *Engine) compute(k Key) (uint64, error) {
	if !k.Feasible() {
		return 0, nil
	}
	if k.Rank == 0 {
		return uint64(k.Dimension/2 + 1), nil
	}

	var total uint64
	for p := range compose.Compose2(k.Dimension - rankStep) {
		a, err := e.size(Key{Rank: 0, Dimension: p.I})
		if err != nil {
			return 0, err
		}
		b, err := e.size(Key{Rank: k.Rank - 1, Dimension: p.J})
		if err != nil {
			return 0, err
		}
		if b == 0 {
			continue
		}
		hi, term := bits.Mul64(a, b)
		var carry uint64
		total, carry = bits.Add64(total, term, 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: class %s", ErrSizeOverflow, k)
		}
	}
	return total, nil
}

func (e *Engine) debugf(format string, args ...any) {
	if e.log != nil {
		e.log.Debugf(format, args...)
	}
}

func (e *Engine) infof(format string, args ...any) {
	if e.log != nil {
		e.log.Infof(format, args...)
	}
}
