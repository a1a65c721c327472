package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads an uint64 from r and stores the result into *c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadFloat64 reads an IEEE-754 float64 from r and stores the result into *c.
func ReadFloat64(r Reader, c *float64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = math.Float64frombits(u)

	return
}

// ReadAsUint64 reads an 8-byte word from r and stores the result into *c.
func ReadAsUint64[T Word](r Reader, c *T) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadAsUint64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = fromUint64[T](u)

	return
}

// ReadAsUint64Slice reads len(c) 8-byte words from r into c.
func ReadAsUint64Slice[T Word](r Reader, c []T) (n int64, err error) {

	for len(c) > 0 {

		size := r.Size()
		if len(c)<<3 < size {
			size = len(c) << 3
		}

		// The internal buffer cannot hold a single word, falls back on word by word reads.
		if size < 8 {
			for i := range c {
				var inc int64
				if inc, err = ReadAsUint64(r, &c[i]); err != nil {
					return n + inc, err
				}
				n += inc
			}
			return
		}

		var slice []byte
		if slice, err = r.Peek(size &^ 7); err != nil {
			return
		}

		buffered := len(slice) >> 3

		for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
			c[i] = fromUint64[T](binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		if inc, err = r.Discard(buffered << 3); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)

		c = c[buffered:]
	}

	return
}
