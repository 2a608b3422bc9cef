package chunk

/*

# Fixed width chunked access to serialized records

A serialized record buffer is a flat byte (or base-36 string) sequence in which
every record occupies exactly width bytes. Like the mmr and urkle packages this
package works by index arithmetic on the flat buffer rather than by decoding it:

	chunk i = buf[i*width : min((i+1)*width, len(buf))]

View gives random access to chunks without copying, which is what binary search
needs. Chunk and Chunks produce the same partition as a sequence, for callers
that want every record in order.

The final chunk is short when len(buf) is not a multiple of width. Producers of
record buffers never emit a short final chunk, but the view does not enforce
that.

Search assumes the chunks are sorted by their leading bytes. That is a
precondition on the producer, it is not checked.

*/
