package trig

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"

	"github.com/google/go-cmp/cmp"
)

// DefaultSubintervals is the number of subintervals of [0, 2π] used by the
// composite trapezium rule when none is given.
const DefaultSubintervals = 10000

// ParametersLiteral is a literal representation of the quadrature parameters. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual checked parameters
// from the literal representation.
//
//   - Subintervals: the number of subintervals of [0, 2π]; controls accuracy vs. cost. Defaults to [DefaultSubintervals].
//   - Workers: the number of goroutines among which the harmonics are split. Defaults to 1.
//     A negative value selects runtime.NumCPU() workers.
type ParametersLiteral struct {
	Subintervals int `json:",omitempty"`
	Workers      int `json:",omitempty"`
}

// Parameters represents a set of checked quadrature parameters. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	subintervals int
	workers      int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral].
// It returns the empty parameters [Parameters]{} and an error wrapping [ErrInvalidArgument] if the
// specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	switch {
	case pl.Subintervals < 0:
		return Parameters{}, fmt.Errorf("trig.NewParametersFromLiteral: Subintervals=%d must be positive: %w", pl.Subintervals, ErrInvalidArgument)
	case pl.Subintervals == 0:
		pl.Subintervals = DefaultSubintervals
	}

	switch {
	case pl.Workers < 0:
		pl.Workers = runtime.NumCPU()
	case pl.Workers == 0:
		pl.Workers = 1
	}

	return Parameters{
		subintervals: pl.Subintervals,
		workers:      pl.Workers,
	}, nil
}

// DefaultParameters returns the parameters of the reference resolution:
// [DefaultSubintervals] subintervals and a single worker.
func DefaultParameters() Parameters {
	return Parameters{subintervals: DefaultSubintervals, workers: 1}
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Subintervals: p.Subintervals(),
		Workers:      p.Workers(),
	}
}

// Subintervals returns the number of subintervals of [0, 2π].
func (p Parameters) Subintervals() int {
	if p.subintervals == 0 {
		return DefaultSubintervals
	}
	return p.subintervals
}

// Workers returns the number of goroutines computing harmonics concurrently.
func (p Parameters) Workers() int {
	if p.workers == 0 {
		return 1
	}
	return p.workers
}

// Step returns the width h = 2π/Subintervals of a subinterval.
func (p Parameters) Step() float64 {
	return 2 * math.Pi / float64(p.Subintervals())
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
