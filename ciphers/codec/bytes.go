package codec

// ToBytes returns the bytes of v as a fresh slice. The result never aliases
// the input, so callers can mutate it without affecting the original value.
func ToBytes[T ~string | ~[]byte](v T) []byte {
	out := make([]byte, len(v))
	copy(out, v)

	return out
}

// CopyBytes returns an independent copy of b. A nil or empty input yields a
// non-nil empty slice.
func CopyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}

// ConcatBytes joins the given slices into one freshly allocated slice,
// preserving order. With no arguments it returns a non-nil empty slice, and
// a single argument still yields an independent copy.
func ConcatBytes(parts ...[]byte) []byte {
	var total int
	for _, p := range parts {
		total += len(p)
	}

	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// Utf8ToBytes encodes s as its UTF-8 byte sequence. Go strings are already
// UTF-8, so this is a copying conversion with a name that states the intent
// at call sites handling key or password material.
func Utf8ToBytes(s string) []byte {
	return []byte(s)
}

// BytesToUtf8 decodes b as a UTF-8 string.
func BytesToUtf8(b []byte) string {
	return string(b)
}
