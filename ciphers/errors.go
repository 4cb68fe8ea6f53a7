package ciphers

import "errors"

// ErrAuthentication is returned by Decrypt implementations when an
// authentication tag does not verify. Implementations must return it instead
// of releasing unauthenticated plaintext.
var ErrAuthentication = errors.New("ciphers: message authentication failed")

// ErrInvalidLength is returned when a key, nonce, buffer or ciphertext has a
// length the operation cannot accept.
var ErrInvalidLength = errors.New("ciphers: invalid length")

// ErrDestroyed is returned when a KeyedHash is used after Destroy.
var ErrDestroyed = errors.New("ciphers: use after destroy")
