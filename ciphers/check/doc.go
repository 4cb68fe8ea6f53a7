// Package check provides argument validation for concrete cipher and hash
// implementations. Constructors and methods validate their byte-sequence and
// count arguments through these helpers so that every implementation reports
// the same errors for the same misuse.
//
// Length failures wrap ciphers.ErrInvalidLength, so callers can match them
// with errors.Is against the shared taxonomy without knowing which helper
// produced them.
package check
