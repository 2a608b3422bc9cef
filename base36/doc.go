package base36

/*

# Base-36 rendering of index records

Index records are byte sequences whose values are all small: every byte is a
digit in 0..35. This package renders such records one character per byte
using the alphabet

	0123456789abcdefghijklmnopqrstuvwxyz

and parses them back. It is not a radix conversion of a big number; each byte
maps to exactly one character, so the encoded form of a fixed width record is a
string of the same width. That keeps chunked access and binary search over
encoded buffers identical to the raw case.

Encoding always produces lower case. Decoding accepts either case.

*/
