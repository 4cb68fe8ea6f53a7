package ciphers

import (
	"fmt"
	"unsafe"
)

// Output resolves the caller-supplied destination buffer convention used by
// CipherWithOutput: a nil dst allocates a fresh buffer of n bytes, a non-nil
// dst must hold at least n bytes and is resliced to exactly n. The returned
// slice shares memory with a non-nil dst, so writes through it are visible
// to the caller.
func Output(dst []byte, n int) ([]byte, error) {
	if dst == nil {
		return make([]byte, n), nil
	}

	if len(dst) < n {
		return nil, fmt.Errorf("%w: output buffer holds %d bytes, need %d", ErrInvalidLength, len(dst), n)
	}

	return dst[:n], nil
}

// AnyOverlap reports whether x and y share memory at any index. Memory
// beyond the slice lengths is ignored.
func AnyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// InexactOverlap reports whether x and y share memory at any non-identical
// position. In-place operation requires either no overlap or exact overlap
// starting at the same byte; implementations use this to reject the partial
// overlaps that would corrupt their own input mid-operation.
func InexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}

	return AnyOverlap(x, y)
}
