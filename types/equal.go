package types

// Equal reports whether a and b are equal? per §3: same tag, recursively
// equal contents. Nil Go values never appear in a well-formed value tree,
// so this simply delegates to the receiver's own Equal method.
func Equal(a, b Value) bool {
	return a.Equal(b)
}
