package compose

/*

# Compositions of an integer into two parts

A composition of n into two parts is an ordered pair (i, j) of non-negative
integers with i + j = n. There are exactly n + 1 of them and this package
yields them in lexicographic order:

	(0, n), (1, n-1), ... (n, 0)

The counting recurrence in the index package convolves two counting sequences
over exactly this domain, so the enumeration order is the order in which the
terms of that convolution are summed.

Sequences are iter.Seq values. They hold no state between calls, so ranging
over the same sequence twice yields the same pairs both times.

*/
