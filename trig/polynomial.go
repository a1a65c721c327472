package trig

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/fourier/utils"
	"github.com/tuneinsight/fourier/utils/structs"
)

// Polynomial is a truncated trigonometric series
//
//	f(x) = a0/2 + sum_{j=1}^{n} aj[j-1] * cos(j*x) + bj[j-1] * sin(j*x).
//
// The cosine and sine coefficient vectors always have the same length n, the degree
// of the polynomial. Polynomials are values: no method modifies its receiver or its
// arguments. The zero value is the constant zero polynomial.
type Polynomial struct {
	a0 float64
	aj structs.Vector[float64]
	bj structs.Vector[float64]
}

// NewPolynomial creates a new polynomial from the zeroth coefficient a0, the cosine
// coefficients aj and the sine coefficients bj. The shorter of aj and bj is padded
// with zeros to the length of the longer one. The inputs are copied.
func NewPolynomial(a0 float64, aj, bj []float64) Polynomial {
	n := utils.Max(len(aj), len(bj))
	return Polynomial{
		a0: a0,
		aj: utils.PadSlice(aj, n),
		bj: utils.PadSlice(bj, n),
	}
}

// NewConstant returns the degree zero polynomial equal to c everywhere.
func NewConstant(c float64) Polynomial {
	return Polynomial{a0: 2 * c}
}

// Degree returns the degree n of the polynomial, i.e. its highest harmonic.
func (p Polynomial) Degree() int {
	return len(p.aj)
}

// A0 returns the zeroth coefficient, which is twice the mean of the polynomial.
func (p Polynomial) A0() float64 {
	return p.a0
}

// Mean returns the mean of the polynomial over one period.
func (p Polynomial) Mean() float64 {
	return p.a0 / 2
}

// Cosines returns a copy of the cosine coefficients; index j-1 holds harmonic j.
func (p Polynomial) Cosines() []float64 {
	return p.aj.CopyNew()
}

// Sines returns a copy of the sine coefficients; index j-1 holds harmonic j.
func (p Polynomial) Sines() []float64 {
	return p.bj.CopyNew()
}

// Coefficient returns the j-th coefficient of the polynomial: the sine coefficient
// if wantSine is true, else the cosine coefficient. Coefficient 0 is a0, whichever
// value wantSine takes, and coefficients above the degree are zero.
// Returns an error wrapping [ErrInvalidArgument] if j is negative.
func (p Polynomial) Coefficient(j int, wantSine bool) (c float64, err error) {

	if j < 0 {
		return 0, fmt.Errorf("cannot Coefficient: j=%d must be non-negative: %w", j, ErrInvalidArgument)
	}

	switch {
	case j > p.Degree():
		return 0, nil
	case j == 0:
		return p.a0, nil
	case wantSine:
		return p.bj[j-1], nil
	default:
		return p.aj[j-1], nil
	}
}

// ValueAt evaluates the polynomial at x.
func (p Polynomial) ValueAt(x float64) (y float64) {
	y = p.a0 / 2
	for j := 1; j <= p.Degree(); j++ {
		jx := float64(j) * x
		y += p.aj[j-1]*math.Cos(jx) + p.bj[j-1]*math.Sin(jx)
	}
	return
}

// DerivativeValueAt evaluates the term-by-term derivative of the polynomial at x.
func (p Polynomial) DerivativeValueAt(x float64) (y float64) {
	for j := 1; j <= p.Degree(); j++ {
		jx := float64(j) * x
		y += float64(j) * (p.bj[j-1]*math.Cos(jx) - p.aj[j-1]*math.Sin(jx))
	}
	return
}

// ValueAtBig evaluates the polynomial at x with the precision of x.
// The coefficients are exact in float64, only the evaluation is carried in higher precision.
func (p Polynomial) ValueAtBig(x *big.Float) (y *big.Float) {
	return p.BigPolynomial(x.Prec()).ValueAtBig(x)
}

// DerivativeValueAtBig evaluates the term-by-term derivative of the polynomial at x with the precision of x.
func (p Polynomial) DerivativeValueAtBig(x *big.Float) (y *big.Float) {
	return p.BigPolynomial(x.Prec()).DerivativeValueAtBig(x)
}

// CopyNew returns a deep copy of the polynomial.
func (p Polynomial) CopyNew() Polynomial {
	return Polynomial{
		a0: p.a0,
		aj: p.aj.CopyNew(),
		bj: p.bj.CopyNew(),
	}
}

// Equal returns true if both polynomials have exactly the same coefficients,
// missing harmonics of the lower degree one counting as zeros.
func (p Polynomial) Equal(other Polynomial) bool {
	n := utils.Max(p.Degree(), other.Degree())
	return p.a0 == other.a0 &&
		structs.Vector[float64](utils.PadSlice(p.aj, n)).Equal(utils.PadSlice(other.aj, n)) &&
		structs.Vector[float64](utils.PadSlice(p.bj, n)).Equal(utils.PadSlice(other.bj, n))
}

// String returns a human readable representation of the coefficients.
func (p Polynomial) String() string {
	return fmt.Sprintf("{a0: %v, aj: %v, bj: %v}", p.a0, []float64(p.aj), []float64(p.bj))
}
