package sparsecs

// extendSlice extends a slice by n zero elements, reallocating if necessary.
func extendSlice[T any](s []T, n int) []T {
	newLen := len(s) + n
	if cap(s) >= newLen {
		return s[:newLen]
	}
	ns := make([]T, newLen, max(2*cap(s), newLen))
	copy(ns, s)
	return ns
}
