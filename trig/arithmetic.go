package trig

import (
	"fmt"

	"github.com/tuneinsight/fourier/utils"
)

// Add returns p + other. The result has the degree of the largest operand.
func (p Polynomial) Add(other Polynomial) Polynomial {
	return p.combine(other, 1)
}

// Sub returns p - other. The result has the degree of the largest operand.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.combine(other, -1)
}

// combine returns p + sign * other on zero-padded copies of the coefficients.
func (p Polynomial) combine(other Polynomial, sign float64) Polynomial {

	n := utils.Max(p.Degree(), other.Degree())

	aj := utils.PadSlice(p.aj, n)
	bj := utils.PadSlice(p.bj, n)

	for i := 0; i < other.Degree(); i++ {
		aj[i] += sign * other.aj[i]
		bj[i] += sign * other.bj[i]
	}

	return Polynomial{
		a0: p.a0 + sign*other.a0,
		aj: aj,
		bj: bj,
	}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// MulScalar returns c * p.
func (p Polynomial) MulScalar(c float64) Polynomial {
	return p.ScaleHarmonics(func(j int) float64 { return c }).scaleA0(c)
}

func (p Polynomial) scaleA0(c float64) Polynomial {
	p.a0 *= c
	return p
}

// ScaleHarmonics returns a copy of p in which the cosine and sine coefficients of
// harmonic j, for j = 1..n, are multiplied by factor(j). a0 is left unchanged.
func (p Polynomial) ScaleHarmonics(factor func(j int) float64) Polynomial {

	q := p.CopyNew()

	for j := 1; j <= q.Degree(); j++ {
		f := factor(j)
		q.aj[j-1] *= f
		q.bj[j-1] *= f
	}

	return q
}

// Multiply returns the product p * other, of degree p.Degree() + other.Degree().
//
// Writing p = sum_p Ap cos(px) + Bp sin(px) and other = sum_q Cq cos(qx) + Dq sin(qx),
// with A0 = a0/2, B0 = 0 (same for other), every pair (p, q) contributes through
//
//	cos(px)cos(qx) = (cos((p-q)x) + cos((p+q)x))/2
//	sin(px)sin(qx) = (cos((p-q)x) - cos((p+q)x))/2
//	cos(px)sin(qx) = (sin((p+q)x) - sin((p-q)x))/2
//	sin(px)cos(qx) = (sin((p+q)x) + sin((p-q)x))/2
//
// to the harmonics p+q and |p-q|. Harmonic 0 is the mean, stored as a0 = 2 * mean.
func (p Polynomial) Multiply(other Polynomial) Polynomial {

	l, m := p.Degree(), other.Degree()
	n := l + m

	// cos[k] and sin[k] accumulate the coefficient of cos(kx) and sin(kx),
	// cos[0] being the constant term.
	cos := make([]float64, n+1)
	sin := make([]float64, n+1)

	for i := 0; i <= l; i++ {

		A, B := p.harmonic(i)

		if A == 0 && B == 0 {
			continue
		}

		for j := 0; j <= m; j++ {

			C, D := other.harmonic(j)

			// Sum frequency.
			cos[i+j] += (A*C - B*D) / 2
			sin[i+j] += (A*D + B*C) / 2

			// Difference frequency, sin is odd and cos is even.
			k := i - j
			cosDiff := (A*C + B*D) / 2
			sinDiff := (B*C - A*D) / 2

			if k < 0 {
				k, sinDiff = -k, -sinDiff
			}

			cos[k] += cosDiff

			// sin(0) = 0
			if k != 0 {
				sin[k] += sinDiff
			}
		}
	}

	return Polynomial{
		a0: 2 * cos[0],
		aj: cos[1:],
		bj: sin[1:],
	}
}

// harmonic returns the coefficients (Aj, Bj) of cos(jx) and sin(jx), with
// A0 = a0/2 and B0 = 0.
func (p Polynomial) harmonic(j int) (A, B float64) {
	if j == 0 {
		return p.a0 / 2, 0
	}
	return p.aj[j-1], p.bj[j-1]
}

// Derivative returns the term-by-term derivative of p, of the same degree.
func (p Polynomial) Derivative() Polynomial {

	n := p.Degree()

	aj := make([]float64, n)
	bj := make([]float64, n)

	for i := 0; i < n; i++ {
		j := float64(i + 1)
		aj[i] = j * p.bj[i]
		bj[i] = -j * p.aj[i]
	}

	return Polynomial{aj: aj, bj: bj}
}

// Antiderivative returns the zero-mean antiderivative of p, of the same degree.
// Returns an error wrapping [ErrInvalidArgument] if |a0| > [AntiderivativeTolerance],
// as a function of non-zero mean has no periodic antiderivative.
func (p Polynomial) Antiderivative() (Polynomial, error) {

	if !utils.IsZero(p.a0, AntiderivativeTolerance) {
		return Polynomial{}, fmt.Errorf("cannot Antiderivative: |a0|=%g > %g: %w", utils.Abs(p.a0), AntiderivativeTolerance, ErrInvalidArgument)
	}

	n := p.Degree()

	aj := make([]float64, n)
	bj := make([]float64, n)

	for i := 0; i < n; i++ {
		j := float64(i + 1)
		aj[i] = -p.bj[i] / j
		bj[i] = p.aj[i] / j
	}

	return Polynomial{aj: aj, bj: bj}, nil
}
