// Package heat implements the closed-form solution of the one-dimensional heat equation
//
//	du/dt = alpha * d²u/dx²
//
// on [0, 2π] with periodic boundary conditions and initial condition u(x, 0) = g(x).
// The initial condition is approximated by a Fourier polynomial of fixed degree, whose
// j-th harmonic decays by the factor exp(-alpha * j² * t).
package heat

import (
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/tuneinsight/fourier/trig"
	"github.com/tuneinsight/fourier/utils/bignum"
)

// Equation is a periodic heat equation with diffusivity alpha, initial condition g
// and truncation degree n. It is immutable after construction and safe for concurrent use.
type Equation struct {
	alpha float64
	g     trig.RealFunction
	n     int

	transformer *trig.Transformer

	once    sync.Once
	initial trig.Polynomial
	err     error
}

// NewEquation instantiates a new [Equation] with diffusivity alpha, initial condition g
// and truncation degree n. The initial condition is approximated with [trig.DefaultParameters].
// Returns an error wrapping [trig.ErrInvalidArgument] if diffusivity <= 0, if degree < 0
// or if the initial condition fails [trig.CheckFunction].
func NewEquation(diffusivity float64, initialCondition trig.RealFunction, degree int) (eq *Equation, err error) {

	if !(diffusivity > 0) {
		return nil, fmt.Errorf("cannot NewEquation: diffusivity=%g must be positive: %w", diffusivity, trig.ErrInvalidArgument)
	}

	if degree < 0 {
		return nil, fmt.Errorf("cannot NewEquation: degree=%d must be non-negative: %w", degree, trig.ErrInvalidArgument)
	}

	if err = trig.CheckFunction(initialCondition); err != nil {
		return nil, fmt.Errorf("cannot NewEquation: initial condition: %w", err)
	}

	return newEquation(diffusivity, initialCondition, degree, trig.DefaultTransformer()), nil
}

func newEquation(alpha float64, g trig.RealFunction, n int, tr *trig.Transformer) *Equation {
	return &Equation{
		alpha:       alpha,
		g:           g,
		n:           n,
		transformer: tr,
	}
}

// WithTransformer returns an instance of the target [Equation] that approximates the
// initial condition with the given transformer.
func (eq *Equation) WithTransformer(tr *trig.Transformer) *Equation {
	return newEquation(eq.alpha, eq.g, eq.n, tr)
}

// Alpha returns the diffusivity.
func (eq *Equation) Alpha() float64 {
	return eq.alpha
}

// Degree returns the truncation degree of the approximation of the initial condition.
func (eq *Equation) Degree() int {
	return eq.n
}

// InitialCondition returns the initial condition g.
func (eq *Equation) InitialCondition() trig.RealFunction {
	return eq.g
}

// DecayFactor returns exp(-alpha * j² * t), the damping of harmonic j after time t.
func (eq *Equation) DecayFactor(j int, t float64) float64 {
	jf := float64(j)
	return math.Exp(-eq.alpha * jf * jf * t)
}

// EvaluateSolution returns
//
//	u = a0/2 + sum_{j=1}^{n} (aj + bj) * exp(-alpha * j² * t)
//
// where a0, aj and bj are the coefficients of the approximation of the initial condition.
// The harmonics are not weighted by cos(jx) and sin(jx): x does not affect the result.
// Use [Equation.Temperature] for the value of the solution at x.
// Returns an error wrapping [trig.ErrInvalidArgument] if t < 0 or t is NaN.
func (eq *Equation) EvaluateSolution(x, t float64) (u float64, err error) {

	if !(t >= 0) {
		return 0, fmt.Errorf("cannot EvaluateSolution: t=%g must be non-negative: %w", t, trig.ErrInvalidArgument)
	}

	f, err := eq.approximation()
	if err != nil {
		return 0, fmt.Errorf("cannot EvaluateSolution: %w", err)
	}

	aj, bj := f.Cosines(), f.Sines()

	u = f.A0() / 2
	for j := 1; j <= f.Degree(); j++ {
		u += (aj[j-1] + bj[j-1]) * eq.DecayFactor(j, t)
	}

	return
}

// Temperature returns u(x, t), the value at x of [Equation.Solution](t).
// Returns an error wrapping [trig.ErrInvalidArgument] if t < 0 or t is NaN.
func (eq *Equation) Temperature(x, t float64) (u float64, err error) {
	f, err := eq.Solution(t)
	if err != nil {
		return 0, fmt.Errorf("cannot Temperature: %w", err)
	}
	return f.ValueAt(x), nil
}

// Solution returns the Fourier polynomial of the temperature profile at time t:
// the approximation of the initial condition with its j-th harmonic scaled by
// exp(-alpha * j² * t). The returned polynomial is a fresh value.
// Returns an error wrapping [trig.ErrInvalidArgument] if t < 0 or t is NaN.
func (eq *Equation) Solution(t float64) (f trig.Polynomial, err error) {

	if !(t >= 0) {
		return f, fmt.Errorf("cannot Solution: t=%g must be non-negative: %w", t, trig.ErrInvalidArgument)
	}

	g, err := eq.approximation()
	if err != nil {
		return f, fmt.Errorf("cannot Solution: %w", err)
	}

	// ScaleHarmonics works on a deep copy of g.
	return g.ScaleHarmonics(func(j int) float64 {
		return eq.DecayFactor(j, t)
	}), nil
}

// DecayFactorBig returns exp(-alpha * j² * t) with the precision of t.
func (eq *Equation) DecayFactorBig(j int, t *big.Float) *big.Float {
	prec := t.Prec()
	x := bignum.NewFloat(-eq.alpha, prec)
	x.Mul(x, bignum.NewFloat(j*j, prec))
	x.Mul(x, t)
	return bignum.Exp(x)
}

// SolutionBig returns the high precision counterpart of [Equation.Solution](t): the approximation
// of the initial condition, lifted to prec bits, with its j-th harmonic scaled by [Equation.DecayFactorBig].
// It is the reference against which the precision of the float64 solution is measured.
// Returns an error wrapping [trig.ErrInvalidArgument] if t < 0 or t is NaN.
func (eq *Equation) SolutionBig(t float64, prec uint) (f trig.BigPolynomial, err error) {

	if !(t >= 0) {
		return f, fmt.Errorf("cannot SolutionBig: t=%g must be non-negative: %w", t, trig.ErrInvalidArgument)
	}

	g, err := eq.approximation()
	if err != nil {
		return f, fmt.Errorf("cannot SolutionBig: %w", err)
	}

	tBig := bignum.NewFloat(t, prec)

	return g.BigPolynomial(prec).ScaleHarmonics(func(j int) *big.Float {
		return eq.DecayFactorBig(j, tBig)
	}), nil
}

// approximation returns the approximation of the initial condition, computed on the first call.
// Later calls do not evaluate the initial condition again.
func (eq *Equation) approximation() (trig.Polynomial, error) {
	eq.once.Do(func() {
		eq.initial, eq.err = eq.transformer.Approximate(eq.g, eq.n)
	})
	return eq.initial, eq.err
}
