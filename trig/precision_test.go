package trig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionStats(t *testing.T) {

	t.Run("InvalidSamples", func(t *testing.T) {
		_, err := GetPrecisionStats(Polynomial{}, Polynomial{}, 0)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Exact", func(t *testing.T) {
		p := newTestPolynomial(t, newTestPRNG(t), 3)
		prec, err := GetPrecisionStats(p, p, 32)
		require.NoError(t, err)
		require.Equal(t, 32, prec.Samples)
		require.Equal(t, float64(MaxLog2Precision), prec.MINLog2Prec.Value)
		require.Equal(t, float64(MaxLog2Precision), prec.AVGLog2Prec.Derivative)
		require.Equal(t, 0.0, prec.STDLog2Prec.Value)
		require.Equal(t, 0.0, prec.MAXErr.Value)
	})

	t.Run("Approximate", func(t *testing.T) {
		g := Func{Value: math.Cos, Derivative: func(x float64) float64 { return -math.Sin(x) }}

		p, err := Approximate(g, 4)
		require.NoError(t, err)

		prec, err := GetPrecisionStats(g, p, 256)
		require.NoError(t, err)

		t.Log(prec.String())

		require.Greater(t, prec.AVGLog2Prec.Value, 30.0)
		require.Greater(t, prec.AVGLog2Prec.Derivative, 30.0)
		require.LessOrEqual(t, prec.MINLog2Prec.Value, prec.MEDLog2Prec.Value)
		require.LessOrEqual(t, prec.MEDLog2Prec.Value, prec.MAXLog2Prec.Value)
		require.Less(t, prec.MAXErr.Value, 1e-9)
	})

	t.Run("Truncation", func(t *testing.T) {
		// A square-like function is poorly approximated by a low degree polynomial.
		g := Func{Value: func(x float64) float64 { return math.Tanh(20 * math.Sin(x)) }}

		low, err := Approximate(g, 3)
		require.NoError(t, err)
		high, err := Approximate(g, 63)
		require.NoError(t, err)

		precLow, err := GetPrecisionStats(g, low, 128)
		require.NoError(t, err)
		precHigh, err := GetPrecisionStats(g, high, 128)
		require.NoError(t, err)

		require.Greater(t, precHigh.AVGLog2Prec.Value, precLow.AVGLog2Prec.Value)
		require.Less(t, precHigh.MAXErr.Value, precLow.MAXErr.Value)
	})

	t.Run("Big/Invalid", func(t *testing.T) {
		p := newTestPolynomial(t, newTestPRNG(t), 2)
		_, err := GetPrecisionStatsBig(p, p, 0, 128)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = GetPrecisionStatsBig(p, p, 16, 32)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Big/Evaluation", func(t *testing.T) {
		// The float64 evaluation of a polynomial is close to its own high precision evaluation.
		p := newTestPolynomial(t, newTestPRNG(t), 8)
		prec, err := GetPrecisionStatsBig(p, p, 64, 128)
		require.NoError(t, err)
		require.Equal(t, 64, prec.Samples)
		require.Greater(t, prec.MINLog2Prec.Value, 45.0)
		require.Greater(t, prec.MINLog2Prec.Derivative, 45.0)
	})

	t.Run("Big/Approximate", func(t *testing.T) {
		// Against a high precision reference, the error is the truncated harmonic 1e-3 cos(5x).
		want := newTestPolynomial(t, newTestPRNG(t), 3).Add(NewPolynomial(0, []float64{0, 0, 0, 0, 1e-3}, nil))
		have, err := Approximate(want, 3)
		require.NoError(t, err)

		prec, err := GetPrecisionStatsBig(want, have, 128, 128)
		require.NoError(t, err)
		require.InDelta(t, 1e-3, prec.MAXErr.Value, 1e-6)
		require.Less(t, prec.MAXLog2Prec.Value, 40.0)
	})
}
