package trig

import (
	"fmt"
)

// RealFunction is a real-valued, differentiable function of a real variable.
// Both methods must be total over the domain used by the caller.
type RealFunction interface {
	ValueAt(x float64) (y float64)
	DerivativeValueAt(x float64) (y float64)
}

// DerivativeStep is the step of the central difference used by [Func] when no derivative is given.
const DerivativeStep = 1e-6

// Func wraps plain Go functions into a [RealFunction]. Value is required.
// If Derivative is nil, the derivative is estimated by a central difference of Value.
type Func struct {
	Value      func(x float64) (y float64)
	Derivative func(x float64) (y float64)
}

// ValueAt returns f(x).
func (f Func) ValueAt(x float64) (y float64) {
	return f.Value(x)
}

// DerivativeValueAt returns f'(x).
func (f Func) DerivativeValueAt(x float64) (y float64) {
	if f.Derivative != nil {
		return f.Derivative(x)
	}
	return (f.Value(x+DerivativeStep) - f.Value(x-DerivativeStep)) / (2 * DerivativeStep)
}

// CheckFunction returns an error wrapping [ErrInvalidArgument] if g is nil or is a [Func]
// without Value.
func CheckFunction(g RealFunction) error {
	switch g := g.(type) {
	case nil:
		return fmt.Errorf("cannot CheckFunction: function is nil: %w", ErrInvalidArgument)
	case Func:
		if g.Value == nil {
			return fmt.Errorf("cannot CheckFunction: Func.Value is nil: %w", ErrInvalidArgument)
		}
	case *Func:
		if g == nil || g.Value == nil {
			return fmt.Errorf("cannot CheckFunction: Func.Value is nil: %w", ErrInvalidArgument)
		}
	}
	return nil
}
