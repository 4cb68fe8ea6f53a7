package ciphers

import "context"

// Cipher is the synchronous contract implemented by concrete symmetric
// ciphers. Encrypt and Decrypt allocate and return a fresh buffer and never
// retain the input past the call.
//
// Decrypt must fail with an error wrapping ErrAuthentication rather than
// return forged plaintext when integrity verification fails, and both
// operations must reject malformed inputs with an error wrapping
// ErrInvalidLength. A single instance is not safe for concurrent use unless
// the implementation documents otherwise.
//
//go:generate mockgen --destination=cipher_mock.go --package=ciphers . Cipher
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// CipherWithOutput refines Cipher with allocation-free variants that write
// into a caller-owned destination buffer.
//
// A nil dst means allocate, matching Encrypt/Decrypt. A non-nil dst must hold
// at least the full result or the call fails with an error wrapping
// ErrInvalidLength; on success the result is dst resliced to the output
// length, so the caller observes the written bytes through its own buffer.
// dst and the input may fully overlap (in-place operation) or not at all;
// partial overlap is undefined.
type CipherWithOutput interface {
	Cipher

	EncryptInto(dst, plaintext []byte) ([]byte, error)
	DecryptInto(dst, ciphertext []byte) ([]byte, error)
}

// AsyncCipher mirrors Cipher for implementations that complete work
// asynchronously, such as hardware-backed keys or a cooperative scheduler.
// Calls block until the result is ready or ctx is done.
//
// Ordering between concurrent calls on one instance is not guaranteed unless
// the implementation documents serialization.
type AsyncCipher interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}
