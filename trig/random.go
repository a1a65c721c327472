package trig

import (
	"fmt"

	"github.com/tuneinsight/fourier/utils/sampling"
)

// NewRandomPolynomial returns a polynomial of the given degree whose coefficients a0, aj and bj,
// in this order, are read uniformly in [-bound, bound) from prng.
// A [sampling.KeyedPRNG] makes the result reproducible.
// Returns an error wrapping [ErrInvalidArgument] if degree < 0 or bound is negative or NaN.
func NewRandomPolynomial(prng sampling.PRNG, degree int, bound float64) (p Polynomial, err error) {

	if degree < 0 {
		return p, fmt.Errorf("cannot NewRandomPolynomial: degree=%d must be non-negative: %w", degree, ErrInvalidArgument)
	}

	if !(bound >= 0) {
		return p, fmt.Errorf("cannot NewRandomPolynomial: bound=%g must be non-negative: %w", bound, ErrInvalidArgument)
	}

	if p.a0, err = sampling.ReadFloat64(prng, -bound, bound); err != nil {
		return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: %w", err)
	}

	aj := make([]float64, degree)
	bj := make([]float64, degree)

	if err = sampling.ReadFloat64Slice(prng, -bound, bound, aj); err != nil {
		return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: %w", err)
	}

	if err = sampling.ReadFloat64Slice(prng, -bound, bound, bj); err != nil {
		return Polynomial{}, fmt.Errorf("cannot NewRandomPolynomial: %w", err)
	}

	p.aj, p.bj = aj, bj

	return
}
