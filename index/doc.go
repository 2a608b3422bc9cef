package index

/*

# Index classes for linear homology

An index is a combinatorial object classified by two non-negative integers,
its rank and its dimension. Indexes of a fixed class are used as basis elements
in a linear homology computation, so the first question for any class is how
many there are.

## Counting

The count for a class satisfies

	size(r, d) = 0                                  if 3r > d
	size(0, d) = d/2 + 1                            (integer division)
	size(r, d) = sum over i+j = d-3 of size(0, i) * size(r-1, j)

The recursive case is a discrete convolution of the rank 0 sequence with the
rank r-1 sequence. Each step up in rank costs 3 units of dimension. The two
part compositions of d-3 are enumerated by the compose package.

For d = 0..11:

	rank 0: 1 1 2 2 3 3 4 4 5  5  6  6
	rank 1: 0 0 0 1 2 5 8 14 20 30 40 55
	rank 2: 0 0 0 0 0 0 1 3  9  19 39 69

Summing ranks 0..4 for a fixed dimension gives the Fibonacci numbers, which is
a useful cross check.

## The Engine

Engine owns the memo cache. There is no package level cache: callers that want
to share results share an Engine. An Engine is safe for concurrent use. Misses
are coalesced so each class is computed at most once at a time, and results
are never evicted since they are pure functions of the key.

Counts are uint64. A class whose count does not fit is an ErrSizeOverflow
rather than a wrapped value.

## Records

A class is serialized as a flat buffer of fixed width records, suitable for
chunk.View and chunk.Search. For rank 0 the record for i in 0..size(0, d)-1 is
the two bytes

	(i, d - 2i)

and the buffer is sorted by leading byte.

The record layout for rank >= 1 is not defined. Records allocates the buffer
(2 * rank bytes per record) and passes it to the configured Generator. The
default Generator fails with ErrNotImplemented.

*/
