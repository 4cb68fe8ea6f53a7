package ciphers

// KeyedHash is the contract implemented by hash and MAC primitives whose
// internal state may hold secret key material. It deliberately omits a reset
// operation: once a key has been absorbed, Destroy is the only defined way to
// release that state.
//
// Update incorporates more input and returns the receiver so calls can chain.
// Digest returns the final digest in a fresh buffer; DigestInto writes it
// into dst, which must hold at least OutputLen bytes, and returns the written
// prefix. Both finalize without changing whether more Update calls are
// accepted; that is implementation-defined and most implementations reject
// further use after finalization.
//
// Destroy zeroes internal state and renders the instance permanently
// unusable: subsequent Update calls are ignored and Digest and DigestInto
// return an error wrapping ErrDestroyed. Destroy is idempotent.
//
//go:generate mockgen --destination=hash_mock.go --package=ciphers . KeyedHash
type KeyedHash interface {
	// BlockLen returns the byte length of the internal compression block.
	BlockLen() int
	// OutputLen returns the byte length of the final digest.
	OutputLen() int

	Update(data []byte) KeyedHash
	DigestInto(dst []byte) ([]byte, error)
	Digest() ([]byte, error)
	Destroy()
}
