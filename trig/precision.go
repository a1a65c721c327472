package trig

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/fourier/utils"
	"github.com/tuneinsight/fourier/utils/bignum"
)

// MaxLog2Precision is the precision, in bits, reported for an exact sample.
const MaxLog2Precision = 53

// PrecisionStats is a struct storing statistics about the precision of an
// approximation of a function, measured on equispaced samples of [0, 2π).
type PrecisionStats struct {
	MINLog2Prec Stats
	MAXLog2Prec Stats
	AVGLog2Prec Stats
	MEDLog2Prec Stats
	STDLog2Prec Stats

	MAXErr Stats

	Samples int
}

// Stats is a struct storing a statistic for the values and for the derivatives.
type Stats struct {
	Value, Derivative float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬──────────┐
│    Log2 │ VALUE    │ DERIV    │
├─────────┼──────────┼──────────┤
│MIN Prec │ %8.2f │ %8.2f │
│MAX Prec │ %8.2f │ %8.2f │
│AVG Prec │ %8.2f │ %8.2f │
│MED Prec │ %8.2f │ %8.2f │
│STD Prec │ %8.2f │ %8.2f │
├─────────┼──────────┼──────────┤
│MAX Err  │ %8.2e │ %8.2e │
└─────────┴──────────┴──────────┘
`,
		prec.MINLog2Prec.Value, prec.MINLog2Prec.Derivative,
		prec.MAXLog2Prec.Value, prec.MAXLog2Prec.Derivative,
		prec.AVGLog2Prec.Value, prec.AVGLog2Prec.Derivative,
		prec.MEDLog2Prec.Value, prec.MEDLog2Prec.Derivative,
		prec.STDLog2Prec.Value, prec.STDLog2Prec.Derivative,
		prec.MAXErr.Value, prec.MAXErr.Derivative)
}

// GetPrecisionStats compares have against the reference want, values and derivatives,
// at the abscissas x_i = 2π*i/samples, i = 0, ..., samples-1.
// Returns an error wrapping [ErrInvalidArgument] if samples < 1.
func GetPrecisionStats(want, have RealFunction, samples int) (prec PrecisionStats, err error) {

	if samples < 1 {
		return prec, fmt.Errorf("cannot GetPrecisionStats: samples=%d must be positive: %w", samples, ErrInvalidArgument)
	}

	return getPrecisionStats(samples, func(x float64) (errValue, errDeriv float64) {
		errValue = utils.Abs(have.ValueAt(x) - want.ValueAt(x))
		errDeriv = utils.Abs(have.DerivativeValueAt(x) - want.DerivativeValueAt(x))
		return
	})
}

// GetPrecisionStatsBig compares have against the reference want evaluated with prec bits
// of precision, values and derivatives, at the abscissas x_i = 2π*i/samples, i = 0, ..., samples-1.
// The differences are computed in prec bits before being rounded to float64, so that the
// statistics measure the error of have alone.
// Returns an error wrapping [ErrInvalidArgument] if samples < 1 or prec < 53.
func GetPrecisionStatsBig(want BigRealFunction, have RealFunction, samples int, prec uint) (ps PrecisionStats, err error) {

	if samples < 1 {
		return ps, fmt.Errorf("cannot GetPrecisionStatsBig: samples=%d must be positive: %w", samples, ErrInvalidArgument)
	}

	if prec < MaxLog2Precision {
		return ps, fmt.Errorf("cannot GetPrecisionStatsBig: prec=%d must be at least %d: %w", prec, MaxLog2Precision, ErrInvalidArgument)
	}

	diff := func(have float64, want *big.Float) float64 {
		d := bignum.NewFloat(have, prec)
		d.Sub(d, want)
		f, _ := d.Abs(d).Float64()
		return f
	}

	return getPrecisionStats(samples, func(x float64) (errValue, errDeriv float64) {
		xBig := bignum.NewFloat(x, prec)
		errValue = diff(have.ValueAt(x), want.ValueAtBig(xBig))
		errDeriv = diff(have.DerivativeValueAt(x), want.DerivativeValueAtBig(xBig))
		return
	})
}

// getPrecisionStats gathers the statistics of the errors returned by errAt on the sample abscissas.
func getPrecisionStats(samples int, errAt func(x float64) (errValue, errDeriv float64)) (prec PrecisionStats, err error) {

	log2PrecValue := make([]float64, samples)
	log2PrecDeriv := make([]float64, samples)

	var maxErrValue, maxErrDeriv float64

	step := 2 * math.Pi / float64(samples)

	for i := 0; i < samples; i++ {

		errValue, errDeriv := errAt(float64(i) * step)

		maxErrValue = utils.Max(maxErrValue, errValue)
		maxErrDeriv = utils.Max(maxErrDeriv, errDeriv)

		log2PrecValue[i] = log2Precision(errValue)
		log2PrecDeriv[i] = log2Precision(errDeriv)
	}

	prec.Samples = samples
	prec.MAXErr = Stats{Value: maxErrValue, Derivative: maxErrDeriv}

	if prec.MINLog2Prec, err = getStats(stats.Min, log2PrecValue, log2PrecDeriv); err != nil {
		return
	}

	if prec.MAXLog2Prec, err = getStats(stats.Max, log2PrecValue, log2PrecDeriv); err != nil {
		return
	}

	if prec.AVGLog2Prec, err = getStats(stats.Mean, log2PrecValue, log2PrecDeriv); err != nil {
		return
	}

	if prec.MEDLog2Prec, err = getStats(stats.Median, log2PrecValue, log2PrecDeriv); err != nil {
		return
	}

	if prec.STDLog2Prec, err = getStats(stats.StandardDeviation, log2PrecValue, log2PrecDeriv); err != nil {
		return
	}

	return
}

func getStats(f func(stats.Float64Data) (float64, error), value, deriv []float64) (s Stats, err error) {
	if s.Value, err = f(value); err != nil {
		return s, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}
	if s.Derivative, err = f(deriv); err != nil {
		return s, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}
	return
}

// log2Precision returns -log2(err), capped to [MaxLog2Precision].
func log2Precision(err float64) float64 {
	if err == 0 {
		return MaxLog2Precision
	}
	return utils.Min(-math.Log2(err), MaxLog2Precision)
}
