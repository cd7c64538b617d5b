// Package shared holds small helpers used by more than one surface.
package shared

// WipeBytes zeroes b in place, e.g. a secret read from the terminal once it
// has been copied into a string. A nil slice is a no-op.
func WipeBytes(b []byte) {
	clear(b)
}
