package trig

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/fourier/utils/buffer"
	"github.com/tuneinsight/fourier/utils/structs"
)

// BinarySize returns the serialized size of the object in bytes.
func (p Polynomial) BinarySize() int {
	return 8 + p.aj.BinarySize() + p.bj.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteFloat64(w, p.a0); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
		}

		n += inc

		if inc, err = p.aj.Encode(w); err != nil {
			return n + inc, fmt.Errorf("aj: %w", err)
		}

		n += inc

		if inc, err = p.bj.Encode(w); err != nil {
			return n + inc, fmt.Errorf("bj: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var a0 float64
		var aj, bj structs.Vector[float64]

		var inc int64
		if inc, err = buffer.ReadFloat64(r, &a0); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadFloat64: %w", err)
		}

		n += inc

		if inc, err = aj.Decode(r); err != nil {
			return n + inc, fmt.Errorf("aj: %w", err)
		}

		n += inc

		if inc, err = bj.Decode(r); err != nil {
			return n + inc, fmt.Errorf("bj: %w", err)
		}

		n += inc

		if len(aj) != len(bj) {
			return n, fmt.Errorf("cannot ReadFrom: len(aj)=%d != len(bj)=%d", len(aj), len(bj))
		}

		*p = Polynomial{a0: a0, aj: aj, bj: bj}

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// polynomialJSON is the JSON representation of a [Polynomial].
type polynomialJSON struct {
	A0 float64
	Aj []float64
	Bj []float64
}

// MarshalJSON returns a JSON representation of the polynomial. See Marshal from the [encoding/json] package.
func (p Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(polynomialJSON{
		A0: p.a0,
		Aj: p.Cosines(),
		Bj: p.Sines(),
	})
}

// UnmarshalJSON reads a JSON representation of a polynomial into the receiver.
// The shorter coefficient list is padded with zeros, as in [NewPolynomial].
func (p *Polynomial) UnmarshalJSON(data []byte) (err error) {
	var pj polynomialJSON
	if err = json.Unmarshal(data, &pj); err != nil {
		return err
	}
	*p = NewPolynomial(pj.A0, pj.Aj, pj.Bj)
	return
}

// Digest returns the blake3 hash of the binary encoding of the polynomial.
// Two polynomials have the same digest if and only if they have the same
// degree and bit-identical coefficients.
func (p Polynomial) Digest() (digest [32]byte) {
	data, err := p.MarshalBinary()

	// The buffer is allocated with the exact size of the encoding.
	if err != nil {
		panic(fmt.Errorf("cannot Digest: %w", err))
	}

	return blake3.Sum256(data)
}
