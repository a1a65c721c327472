// Package structs implements generic vectors of 8-byte words and their length-prefixed encoding.
package structs

import (
	"fmt"
	"io"

	"github.com/tuneinsight/fourier/utils"
	"github.com/tuneinsight/fourier/utils/buffer"
)

// decodeChunk is the maximum number of elements allocated ahead of the data
// actually read by [Vector.Decode].
const decodeChunk = 1 << 12

// Vector is a slice of 8-byte words.
type Vector[T buffer.Word] []T

// CopyNew returns a deep copy of the vector.
func (v Vector[T]) CopyNew() Vector[T] {
	return append(Vector[T](make([]T, 0, len(v))), v...)
}

// Equal returns true if both vectors have the same length and elements.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// BinarySize returns the size in bytes of the encoding of the vector:
// an 8-byte length followed by the elements.
func (v Vector[T]) BinarySize() int {
	return 8 * (len(v) + 1)
}

// Encode writes the length of v followed by its elements on w, without flushing w.
func (v Vector[T]) Encode(w buffer.Writer) (n int64, err error) {

	if n, err = buffer.WriteAsUint64(w, len(v)); err != nil {
		return n, fmt.Errorf("cannot Encode: length: %w", err)
	}

	inc, err := buffer.WriteAsUint64Slice(w, []T(v))
	if n += inc; err != nil {
		return n, fmt.Errorf("cannot Encode: elements: %w", err)
	}

	return
}

// Decode reads a vector encoded by [Vector.Encode] from r into the receiver, reusing its capacity.
// The elements are allocated as they are read, so that a corrupted length fails on the
// missing data rather than on the allocation.
func (v *Vector[T]) Decode(r buffer.Reader) (n int64, err error) {

	var size int
	if n, err = buffer.ReadAsUint64(r, &size); err != nil {
		return n, fmt.Errorf("cannot Decode: length: %w", err)
	}

	if size < 0 {
		return n, fmt.Errorf("cannot Decode: invalid length %d", size)
	}

	if b, ok := r.(*buffer.Buffer); ok && size > b.Size()/8 {
		return n, fmt.Errorf("cannot Decode: length %d > %d remaining words: %w", size, b.Size()/8, io.ErrUnexpectedEOF)
	}

	vec := (*v)[:0]

	for len(vec) < size {

		start := len(vec)
		vec = append(vec, make([]T, utils.Min(size-start, decodeChunk))...)

		inc, err := buffer.ReadAsUint64Slice(r, []T(vec[start:]))
		if n += inc; err != nil {
			return n, fmt.Errorf("cannot Decode: elements: %w", err)
		}
	}

	*v = vec

	return
}
