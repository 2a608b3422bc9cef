package chunk

import "iter"

// Chunk yields buf in chunks of width bytes, in order. The last chunk may be
// shorter than width. Nothing is yielded for an empty buf or a width <= 0.
func Chunk[S Bytes](width int, buf S) iter.Seq[S] {
	return func(yield func(S) bool) {
		if width <= 0 {
			return
		}
		for lo := 0; lo < len(buf); lo += width {
			hi := min(lo+width, len(buf))
			if !yield(buf[lo:hi]) {
				return
			}
		}
	}
}

// Chunks returns the chunks yielded by Chunk as a slice.
func Chunks[S Bytes](width int, buf S) []S {
	var chunks []S
	for c := range Chunk(width, buf) {
		chunks = append(chunks, c)
	}
	return chunks
}
