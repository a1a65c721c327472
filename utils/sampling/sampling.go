// Package sampling implements deterministic sampling of floats from keyed byte streams.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadFloat64 reads 8 bytes from r and maps them uniformly to [min, max).
func ReadFloat64(r io.Reader, min, max float64) (f float64, err error) {
	var b [8]byte
	if _, err = io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("cannot ReadFloat64: %w", err)
	}
	// 53 random bits, the mantissa of a float64 in [0, 1).
	f = float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
	return math.FMA(f, max-min, min), nil
}

// ReadFloat64Slice fills s with floats read from r by [ReadFloat64].
func ReadFloat64Slice(r io.Reader, min, max float64, s []float64) (err error) {
	for i := range s {
		if s[i], err = ReadFloat64(r, min, max); err != nil {
			return
		}
	}
	return
}
