package ciphers

import "runtime"

// Wipe zeroes every given buffer. Implementations call it from Destroy and
// from constructors that expand key material into scratch space the caller
// never sees.
//
// This is best-effort: it reduces the window in which secrets sit in memory
// but cannot reach copies the runtime or the caller made earlier.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		wipe(b)
	}
}

//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Keep b live until after the loop so the writes are not elided.
	runtime.KeepAlive(&b)
}
