package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc1("Exp/Negative", -2.5, math.Exp, Exp, 1e-15, t)
	testFunc1("Cos/Reduced", 20.0, math.Cos, func(x *big.Float) *big.Float { return Cos(Mod2Pi(x)) }, 1e-13, t)
}

func TestMod2Pi(t *testing.T) {
	for _, x := range []float64{0, 1, 7, 20, -1, -7} {
		y, _ := Mod2Pi(NewFloat(x, 128)).Float64()
		require.GreaterOrEqual(t, y, 0.0)
		require.Less(t, y, 2*math.Pi)
		require.InDelta(t, math.Cos(x), math.Cos(y), 1e-14)
	}
}

func TestPi(t *testing.T) {
	pi, _ := Pi(53).Float64()
	require.Equal(t, math.Pi, pi)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
