// Package ciphers is the shared substrate underneath symmetric-cipher
// implementations: stream ciphers, AEAD constructions and keyed hashes that
// live in other modules build on the primitives defined here instead of
// reimplementing them.
//
// The package provides:
//   - Capability contracts (Cipher, CipherWithOutput, AsyncCipher, KeyedHash)
//     that concrete algorithms implement to be composable with each other
//   - EqualBytes, a constant-time comparison for authentication tags
//   - LengthBlock, the fixed 16-byte little-endian length encoding that AEAD
//     constructions authenticate alongside their payload
//   - Output, AnyOverlap and InexactOverlap for caller-supplied destination
//     buffers, and Wipe for scrubbing key material
//
// Supporting conversions live in subpackages: codec for hex, UTF-8 and
// big-endian integer marshaling, check for argument validation, scheme for
// parameter metadata and registration, and sched for cooperative processing
// of large inputs.
//
// No concrete cipher or hash algorithm is defined here, and nothing in this
// package provides randomness or a wire protocol.
package ciphers
