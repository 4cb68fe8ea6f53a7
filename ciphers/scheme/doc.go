// Package scheme attaches read-only parameter metadata to cipher
// constructors and indexes them by name.
//
// A Scheme pairs a Constructor with an immutable Params record (block size,
// supported nonce lengths, tag length) so callers can inspect a cipher's
// limits, for example to generate a nonce of the right length, before
// constructing any instance. A Registry maps scheme names to schemes so that
// protocol code can negotiate ciphers by name; a package-level default
// registry is provided for the common case of registration from init
// functions.
//
// Params records are validated on construction using go-playground/validator
// struct tags plus a custom rule for scheme names.
package scheme
