package trig

import (
	"fmt"
	"math"
	"sync"

	"github.com/tuneinsight/fourier/utils"
)

// Transformer estimates the Fourier coefficients of a [RealFunction] over [0, 2π]
// with the composite trapezium rule. A Transformer is stateless apart from its
// parameters and is safe for concurrent use.
type Transformer struct {
	params Parameters
}

// NewTransformer instantiates a new [Transformer] from the given parameters.
func NewTransformer(params Parameters) *Transformer {
	return &Transformer{params: params}
}

// DefaultTransformer returns a [Transformer] instantiated with [DefaultParameters].
func DefaultTransformer() *Transformer {
	return NewTransformer(DefaultParameters())
}

// Parameters returns the parameters of the transformer.
func (tr *Transformer) Parameters() Parameters {
	return tr.params
}

// Approximate returns the Fourier polynomial of degree n of g, with [DefaultParameters].
// See [Transformer.Approximate].
func Approximate(g RealFunction, n int) (Polynomial, error) {
	return DefaultTransformer().Approximate(g, n)
}

// Approximate returns the Fourier polynomial of degree n of g, whose coefficients
//
//	a0 = 1/π ∫ g(x) dx, aj = 1/π ∫ g(x)cos(jx) dx, bj = 1/π ∫ g(x)sin(jx) dx
//
// over [0, 2π] are estimated with the composite trapezium rule.
// g is sampled once per abscissa and the samples are shared by all harmonics,
// which are split among the configured number of workers.
// Returns an error wrapping [ErrInvalidArgument] if n is negative or if g fails [CheckFunction].
func (tr *Transformer) Approximate(g RealFunction, n int) (Polynomial, error) {

	if n < 0 {
		return Polynomial{}, fmt.Errorf("cannot Approximate: degree n=%d must be non-negative: %w", n, ErrInvalidArgument)
	}

	if err := CheckFunction(g); err != nil {
		return Polynomial{}, fmt.Errorf("cannot Approximate: %w", err)
	}

	samples := tr.sample(g)

	aj := make([]float64, n)
	bj := make([]float64, n)

	workers := utils.Min(tr.params.Workers(), n)

	if workers <= 1 {
		for j := 1; j <= n; j++ {
			aj[j-1], bj[j-1] = tr.harmonic(samples, j)
		}
	} else {

		var wg sync.WaitGroup

		// Harmonics are dealt round-robin so that the workload of each worker is balanced.
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for j := w + 1; j <= n; j += workers {
					aj[j-1], bj[j-1] = tr.harmonic(samples, j)
				}
			}(w)
		}

		wg.Wait()
	}

	return Polynomial{
		a0: tr.constant(samples),
		aj: aj,
		bj: bj,
	}, nil
}

// sample returns g(i*h) for i = 0, ..., N-1 followed by g(2π).
func (tr *Transformer) sample(g RealFunction) (samples []float64) {

	N := tr.params.Subintervals()
	h := tr.params.Step()

	samples = make([]float64, N+1)

	for i := 0; i < N; i++ {
		samples[i] = g.ValueAt(float64(i) * h)
	}

	samples[N] = g.ValueAt(2 * math.Pi)

	return
}

// constant returns the trapezium estimate of a0.
func (tr *Transformer) constant(samples []float64) (a0 float64) {

	N := len(samples) - 1
	h := tr.params.Step()

	a0 = h * (samples[0] + samples[N]) / (2 * math.Pi)

	for i := 1; i < N; i++ {
		a0 += h * samples[i] / math.Pi
	}

	return
}

// harmonic returns the trapezium estimates of aj and bj.
func (tr *Transformer) harmonic(samples []float64, j int) (a, b float64) {

	N := len(samples) - 1
	h := tr.params.Step()

	// Endpoints, x = 0 and x = 2π.
	end := 2 * math.Pi * float64(j)
	a = h * (samples[0]*math.Cos(0) + samples[N]*math.Cos(end)) / (2 * math.Pi)
	b = h * (samples[0]*math.Sin(0) + samples[N]*math.Sin(end)) / (2 * math.Pi)

	for i := 1; i < N; i++ {
		x := float64(j*i) * h
		a += h * samples[i] * math.Cos(x) / math.Pi
		b += h * samples[i] * math.Sin(x) / math.Pi
	}

	return
}
