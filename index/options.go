package index

import "fmt"

// Generator fills buf with the count records of class k. buf is zero filled
// and exactly count * RecordWidth(k.Rank) bytes long.
//
// Generators are only consulted for rank >= 1 classes with count > 0.
type Generator func(k Key, count uint64, buf []byte) error

// Options configures an Engine.
type Options struct {
	generator Generator

	// onCompute is called for every class the engine computes rather than
	// reads from its cache.
	onCompute func(Key)
}

// Option sets a field of Options.
type Option func(*Options)

// WithGenerator sets the record generator used for rank >= 1 classes. A nil
// generator leaves the default in place.
func WithGenerator(g Generator) Option {
	return func(o *Options) {
		if g != nil {
			o.generator = g
		}
	}
}

func unimplementedGenerator(k Key, _ uint64, _ []byte) error {
	return fmt.Errorf("%w: no record layout for rank %d (class %s)", ErrNotImplemented, k.Rank, k)
}
