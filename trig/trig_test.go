package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/fourier/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb}

func newTestPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)
	return prng
}

// newTestPolynomial returns a polynomial of the given degree with coefficients uniform in [-1, 1].
func newTestPolynomial(t *testing.T, prng sampling.PRNG, degree int) Polynomial {
	p, err := NewRandomPolynomial(prng, degree, 1)
	require.NoError(t, err)
	return p
}

// directSum evaluates a0/2 + sum aj cos(jx) + bj sin(jx) and its derivative from raw slices.
func directSum(a0 float64, aj, bj []float64, x float64) (y, dy float64) {
	y = a0 / 2
	for i := range aj {
		j := float64(i + 1)
		y += aj[i]*math.Cos(j*x) + bj[i]*math.Sin(j*x)
		dy += j*bj[i]*math.Cos(j*x) - j*aj[i]*math.Sin(j*x)
	}
	return
}

// countingFunc counts the number of evaluations.
type countingFunc struct {
	RealFunction
	calls int
}

func (f *countingFunc) ValueAt(x float64) float64 {
	f.calls++
	return f.RealFunction.ValueAt(x)
}

var testAbscissas = []float64{0, 0.1, 1, math.Pi / 3, math.Pi, 4.2, 2 * math.Pi, -1.7, 10}
