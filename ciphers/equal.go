package ciphers

import "crypto/subtle"

// EqualBytes reports whether a and b hold the same bytes, taking time
// dependent only on their length. A length mismatch returns false
// immediately since length is not secret; equal-length inputs are compared
// over their entire contents regardless of where they first differ, so the
// position of a mismatch never leaks through timing.
//
// Use this instead of bytes.Equal whenever either side is an authentication
// tag, a MAC or other secret-derived material. Empty sequences are equal.
func EqualBytes(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
