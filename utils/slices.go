package utils

// PadSlice returns a copy of s of length max(len(s), n), with
// the additional entries set to the zero value.
func PadSlice[V any](s []V, n int) (padded []V) {
	padded = make([]V, Max(len(s), n))
	copy(padded, s)
	return
}
