package trig

import (
	"math/big"

	"github.com/tuneinsight/fourier/utils/bignum"
)

// BigRealFunction is a real-valued, differentiable function evaluated in arbitrary precision.
// Results carry the precision of x.
type BigRealFunction interface {
	ValueAtBig(x *big.Float) (y *big.Float)
	DerivativeValueAtBig(x *big.Float) (y *big.Float)
}

// BigPolynomial is a trigonometric polynomial with big.Float coefficients. It serves as
// the high precision reference of float64 computations, see [GetPrecisionStatsBig].
// Instances are obtained from [Polynomial.BigPolynomial].
type BigPolynomial struct {
	a0     *big.Float
	aj, bj []*big.Float
}

// BigPolynomial returns p with its coefficients lifted to prec bits of precision.
func (p Polynomial) BigPolynomial(prec uint) BigPolynomial {

	q := BigPolynomial{
		a0: bignum.NewFloat(p.a0, prec),
		aj: make([]*big.Float, p.Degree()),
		bj: make([]*big.Float, p.Degree()),
	}

	for i := range q.aj {
		q.aj[i] = bignum.NewFloat(p.aj[i], prec)
		q.bj[i] = bignum.NewFloat(p.bj[i], prec)
	}

	return q
}

// Degree returns the highest harmonic of p.
func (p BigPolynomial) Degree() int {
	return len(p.aj)
}

// ScaleHarmonics returns a copy of p in which the coefficients of harmonic j, for
// j = 1..n, are multiplied by factor(j). a0 is left unchanged.
func (p BigPolynomial) ScaleHarmonics(factor func(j int) *big.Float) BigPolynomial {

	q := BigPolynomial{
		a0: new(big.Float).Set(p.a0),
		aj: make([]*big.Float, p.Degree()),
		bj: make([]*big.Float, p.Degree()),
	}

	for j := 1; j <= p.Degree(); j++ {
		f := factor(j)
		q.aj[j-1] = new(big.Float).Mul(p.aj[j-1], f)
		q.bj[j-1] = new(big.Float).Mul(p.bj[j-1], f)
	}

	return q
}

// ValueAtBig evaluates p at x with the precision of x.
func (p BigPolynomial) ValueAtBig(x *big.Float) (y *big.Float) {

	prec := x.Prec()

	y = new(big.Float).SetPrec(prec).Quo(p.a0, bignum.NewFloat(2, prec))

	p.harmonics(x, func(j int, cos, sin *big.Float) {
		cos.Mul(cos, p.aj[j-1])
		sin.Mul(sin, p.bj[j-1])
		y.Add(y, cos)
		y.Add(y, sin)
	})

	return
}

// DerivativeValueAtBig evaluates the term-by-term derivative of p at x with the precision of x.
func (p BigPolynomial) DerivativeValueAtBig(x *big.Float) (y *big.Float) {

	prec := x.Prec()

	y = new(big.Float).SetPrec(prec)

	p.harmonics(x, func(j int, cos, sin *big.Float) {
		// j * (bj cos(jx) - aj sin(jx))
		cos.Mul(cos, p.bj[j-1])
		sin.Mul(sin, p.aj[j-1])
		cos.Sub(cos, sin)
		cos.Mul(cos, bignum.NewFloat(j, prec))
		y.Add(y, cos)
	})

	return
}

// harmonics calls f with cos(jx) and sin(jx), for j = 1..n, at the precision of x.
// f may modify its arguments.
func (p BigPolynomial) harmonics(x *big.Float, f func(j int, cos, sin *big.Float)) {

	prec := x.Prec()

	jx := new(big.Float).SetPrec(prec)

	for j := 1; j <= p.Degree(); j++ {
		jx.Mul(x, bignum.NewFloat(j, prec))
		jx = bignum.Mod2Pi(jx)
		f(j, bignum.Cos(jx), bignum.Sin(jx))
	}
}
