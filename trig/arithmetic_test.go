package trig

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func requirePolynomialInDelta(t *testing.T, want, have Polynomial, delta float64) {
	t.Helper()
	require.Equal(t, want.Degree(), have.Degree())
	require.InDelta(t, want.A0(), have.A0(), delta)
	require.InDeltaSlice(t, want.Cosines(), have.Cosines(), delta)
	require.InDeltaSlice(t, want.Sines(), have.Sines(), delta)
}

func TestArithmetic(t *testing.T) {

	prng := newTestPRNG(t)

	P := newTestPolynomial(t, prng, 3)
	Q := newTestPolynomial(t, prng, 5)
	R := newTestPolynomial(t, prng, 1)

	snapshot := func(p Polynomial) []float64 {
		return append(append([]float64{p.A0()}, p.Cosines()...), p.Sines()...)
	}

	sP, sQ, sR := snapshot(P), snapshot(Q), snapshot(R)

	// None of the operations may modify their operands.
	defer func() {
		require.True(t, cmp.Equal(sP, snapshot(P)))
		require.True(t, cmp.Equal(sQ, snapshot(Q)))
		require.True(t, cmp.Equal(sR, snapshot(R)))
	}()

	t.Run("Add/Padding", func(t *testing.T) {
		sum := NewPolynomial(1, []float64{1}, []float64{2}).Add(NewPolynomial(2, []float64{3, 4, 5}, []float64{6, 7, 8}))
		require.Equal(t, 3, sum.Degree())
		require.Equal(t, 3.0, sum.A0())
		require.Equal(t, []float64{4, 4, 5}, sum.Cosines())
		require.Equal(t, []float64{8, 7, 8}, sum.Sines())
	})

	t.Run("Add/Commutative", func(t *testing.T) {
		requirePolynomialInDelta(t, P.Add(Q), Q.Add(P), 1e-15)
	})

	t.Run("Add/Associative", func(t *testing.T) {
		requirePolynomialInDelta(t, P.Add(Q).Add(R), P.Add(Q.Add(R)), 1e-14)
	})

	t.Run("Add/Zero", func(t *testing.T) {
		require.True(t, P.Equal(P.Add(Polynomial{})))
		require.True(t, P.Equal(Polynomial{}.Add(P)))
		require.True(t, P.Equal(P.Add(NewPolynomial(0, make([]float64, 8), nil))))
	})

	t.Run("Add/Values", func(t *testing.T) {
		S := P.Add(Q)
		for _, x := range testAbscissas {
			require.InDelta(t, P.ValueAt(x)+Q.ValueAt(x), S.ValueAt(x), 1e-12)
		}
	})

	t.Run("Sub&Neg", func(t *testing.T) {
		D := P.Sub(Q)
		requirePolynomialInDelta(t, P.Add(Q.Neg()), D, 1e-15)
		requirePolynomialInDelta(t, NewPolynomial(0, make([]float64, 3), nil), P.Sub(P), 0)
		for _, x := range testAbscissas {
			require.InDelta(t, P.ValueAt(x)-Q.ValueAt(x), D.ValueAt(x), 1e-12)
		}
	})

	t.Run("MulScalar", func(t *testing.T) {
		S := P.MulScalar(-2.5)
		for _, x := range testAbscissas {
			require.InDelta(t, -2.5*P.ValueAt(x), S.ValueAt(x), 1e-12)
		}
	})

	t.Run("ScaleHarmonics", func(t *testing.T) {
		S := P.ScaleHarmonics(func(j int) float64 { return float64(j) })
		require.Equal(t, P.A0(), S.A0())
		for j := 1; j <= P.Degree(); j++ {
			want, _ := P.Coefficient(j, false)
			have, _ := S.Coefficient(j, false)
			require.Equal(t, float64(j)*want, have)
			want, _ = P.Coefficient(j, true)
			have, _ = S.Coefficient(j, true)
			require.Equal(t, float64(j)*want, have)
		}
	})

	t.Run("Multiply/CosCos", func(t *testing.T) {
		// cos²(x) = 1/2 + cos(2x)/2
		cos := NewPolynomial(0, []float64{1}, []float64{0})
		prod := cos.Multiply(cos)
		require.Equal(t, 2, prod.Degree())
		require.InDelta(t, 1.0, prod.A0(), 1e-15)
		require.InDeltaSlice(t, []float64{0, 0.5}, prod.Cosines(), 1e-15)
		require.InDeltaSlice(t, []float64{0, 0}, prod.Sines(), 1e-15)
	})

	t.Run("Multiply/SinSin", func(t *testing.T) {
		// sin²(x) = 1/2 - cos(2x)/2
		sin := NewPolynomial(0, nil, []float64{1})
		prod := sin.Multiply(sin)
		require.InDelta(t, 1.0, prod.A0(), 1e-15)
		require.InDeltaSlice(t, []float64{0, -0.5}, prod.Cosines(), 1e-15)
		require.InDeltaSlice(t, []float64{0, 0}, prod.Sines(), 1e-15)
	})

	t.Run("Multiply/SinCos", func(t *testing.T) {
		// sin(x)cos(2x) = (sin(3x) - sin(x))/2
		sin := NewPolynomial(0, nil, []float64{1})
		cos2 := NewPolynomial(0, []float64{0, 1}, nil)
		for _, prod := range []Polynomial{sin.Multiply(cos2), cos2.Multiply(sin)} {
			require.Equal(t, 3, prod.Degree())
			require.InDelta(t, 0.0, prod.A0(), 1e-15)
			require.InDeltaSlice(t, []float64{0, 0, 0}, prod.Cosines(), 1e-15)
			require.InDeltaSlice(t, []float64{-0.5, 0, 0.5}, prod.Sines(), 1e-15)
		}
	})

	t.Run("Multiply/Constants", func(t *testing.T) {
		prod := NewConstant(2).Multiply(NewConstant(3))
		require.Equal(t, 0, prod.Degree())
		require.InDelta(t, 6.0, prod.Mean(), 1e-15)

		prod = NewConstant(2).Multiply(P)
		requirePolynomialInDelta(t, P.MulScalar(2), prod.truncate(P.Degree()), 1e-15)
	})

	t.Run("Multiply/Values", func(t *testing.T) {
		for _, pair := range [][2]Polynomial{{P, Q}, {Q, P}, {P, R}, {R, R}} {
			prod := pair[0].Multiply(pair[1])
			require.Equal(t, pair[0].Degree()+pair[1].Degree(), prod.Degree())
			for _, x := range testAbscissas {
				require.InDelta(t, pair[0].ValueAt(x)*pair[1].ValueAt(x), prod.ValueAt(x), 1e-12)
			}
		}
	})

	t.Run("Multiply/Commutative", func(t *testing.T) {
		requirePolynomialInDelta(t, P.Multiply(Q), Q.Multiply(P), 1e-14)
	})

	t.Run("Multiply/Distributive", func(t *testing.T) {
		requirePolynomialInDelta(t, P.Multiply(Q.Add(R)), P.Multiply(Q).Add(P.Multiply(R)), 1e-13)
	})

	t.Run("Derivative", func(t *testing.T) {
		D := P.Derivative()
		require.Equal(t, P.Degree(), D.Degree())
		require.Equal(t, 0.0, D.A0())
		for _, x := range testAbscissas {
			require.InDelta(t, P.DerivativeValueAt(x), D.ValueAt(x), 1e-12)
		}

		require.Equal(t, []float64{2, 6}, NewPolynomial(7, []float64{1, 2}, []float64{2, 3}).Derivative().Cosines())
		require.Equal(t, []float64{-1, -4}, NewPolynomial(7, []float64{1, 2}, []float64{2, 3}).Derivative().Sines())
	})

	t.Run("Antiderivative/NonZeroMean", func(t *testing.T) {
		_, err := NewPolynomial(1, []float64{1}, []float64{1}).Antiderivative()
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NewPolynomial(-2e-10, []float64{1}, nil).Antiderivative()
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NewPolynomial(1e-11, []float64{1}, nil).Antiderivative()
		require.NoError(t, err)
	})

	t.Run("Antiderivative/Derivative", func(t *testing.T) {
		Z := NewPolynomial(0, Q.Cosines(), Q.Sines())

		A, err := Z.Derivative().Antiderivative()
		require.NoError(t, err)
		requirePolynomialInDelta(t, Z, A, 1e-15)

		A, err = Z.Antiderivative()
		require.NoError(t, err)
		requirePolynomialInDelta(t, Z, A.Derivative(), 1e-15)

		for _, x := range testAbscissas {
			require.InDelta(t, Z.ValueAt(x), A.DerivativeValueAt(x), 1e-12)
		}
	})

	t.Run("Antiderivative/Empty", func(t *testing.T) {
		A, err := Polynomial{}.Antiderivative()
		require.NoError(t, err)
		require.True(t, cmp.Equal([]float64{}, A.Cosines(), cmpopts.EquateEmpty()))
	})
}

// truncate returns the polynomial restricted to its first n harmonics.
func (p Polynomial) truncate(n int) Polynomial {
	return NewPolynomial(p.a0, p.aj[:n], p.bj[:n])
}
