package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Word is the set of 8-byte types that can be written and read by this package.
type Word interface {
	uint64 | int64 | float64 | int | uint
}

// WriteUint64 writes an uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available() < 8 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < 8 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	nint, err := w.Write(binary.LittleEndian.AppendUint64(w.AvailableBuffer(), c))

	return int64(nint), err
}

// WriteFloat64 writes the IEEE-754 representation of c to w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteAsUint64 writes c to w as an 8-byte word.
func WriteAsUint64[T Word](w Writer, c T) (n int64, err error) {
	return WriteUint64(w, toUint64(c))
}

// WriteAsUint64Slice writes the slice c to w, each element as an 8-byte word.
// The length of c is not written.
func WriteAsUint64Slice[T Word](w Writer, c []T) (n int64, err error) {

	for len(c) > 0 {

		// Remaining available space in the internal buffer
		available := w.Available() >> 3

		if available == 0 {

			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteAsUint64Slice: available buffer/8 is zero even after flush")
			}
		}

		N := len(c)
		if N > available {
			N = available
		}

		buf := w.AvailableBuffer()
		for _, ci := range c[:N] {
			buf = binary.LittleEndian.AppendUint64(buf, toUint64(ci))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)

		if err != nil {
			return
		}

		c = c[N:]
	}

	return
}

func toUint64[T Word](c T) uint64 {
	switch c := any(c).(type) {
	case float64:
		return math.Float64bits(c)
	case uint64:
		return c
	case int64:
		return uint64(c)
	case int:
		return uint64(c)
	default:
		return uint64(any(c).(uint))
	}
}

func fromUint64[T Word](c uint64) (v T) {
	switch any(v).(type) {
	case float64:
		return any(math.Float64frombits(c)).(T)
	case uint64:
		return any(c).(T)
	case int64:
		return any(int64(c)).(T)
	case int:
		return any(int(c)).(T)
	default:
		return any(uint(c)).(T)
	}
}
