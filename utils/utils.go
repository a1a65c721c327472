// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Abs returns |a|.
func Abs[V constraints.Signed | constraints.Float](a V) (r V) {
	if a < 0 {
		return -a
	}
	return a
}

// IsZero returns true if |a| <= tol.
func IsZero[V constraints.Float](a, tol V) bool {
	return Abs(a) <= tol
}
