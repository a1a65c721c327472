// Package trig implements truncated trigonometric (Fourier) series of 2π-periodic real functions:
// their algebra, their numerical estimation from an arbitrary function by the composite trapezium
// rule, their serialization and tools to measure their precision.
//
// A [Polynomial] of degree n represents
//
//	f(x) = a0/2 + sum_{j=1}^{n} aj * cos(j*x) + bj * sin(j*x)
//
// so that the stored a0 is twice the mean of f over [0, 2π].
package trig

import (
	"errors"
)

// ErrInvalidArgument is returned, wrapped, by every operation called with an argument outside of its domain.
// Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// AntiderivativeTolerance is the largest |a0| for which a periodic antiderivative is considered to exist.
const AntiderivativeTolerance = 1e-10
