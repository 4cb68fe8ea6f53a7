// Package codec converts between the byte sequences used by cipher
// implementations and their common text/integer representations.
//
// Core APIs include hex encoding/decoding with precise error positions,
// fixed-width big-endian integer encoding with explicit overflow errors,
// UTF-8 conversion, and ownership-safe helpers (ToBytes, CopyBytes,
// ConcatBytes) that never alias caller buffers.
//
// Functions that can fail return explicit errors instead of panicking, so
// callers can handle malformed input predictably in production paths.
package codec
