package check

import (
	"errors"
	"fmt"

	"github.com/mirceanis/noble-ciphers/ciphers"
)

// ErrNilBytes is returned when a required byte sequence is nil. An empty
// non-nil sequence is a valid argument; nil signals a missing one.
var ErrNilBytes = errors.New("check: byte sequence is nil")

// ErrNegative is returned when a count or size argument is negative.
var ErrNegative = errors.New("check: negative count")

// Bytes validates a byte-sequence argument. A nil sequence fails with
// ErrNilBytes. When sizes are given, the sequence length must equal one of
// them or the call fails with an error wrapping ciphers.ErrInvalidLength;
// with no sizes any length is accepted. name identifies the argument in the
// error message.
//
// Example:
//
//	if err := check.Bytes("key", key, 16, 32); err != nil {
//		return nil, err
//	}
func Bytes(name string, b []byte, sizes ...int) error {
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNilBytes, name)
	}

	if len(sizes) == 0 {
		return nil
	}

	for _, size := range sizes {
		if len(b) == size {
			return nil
		}
	}

	return fmt.Errorf("%w: %s has %d bytes, expected one of %v", ciphers.ErrInvalidLength, name, len(b), sizes)
}

// Number validates a count or size argument, failing with ErrNegative when
// n is below zero.
func Number(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s is %d", ErrNegative, name, n)
	}

	return nil
}

// Output validates a caller-supplied destination buffer that must hold at
// least min bytes. A nil buffer fails with ErrNilBytes; use ciphers.Output
// instead when nil should mean allocate.
func Output(name string, dst []byte, min int) error {
	if dst == nil {
		return fmt.Errorf("%w: %s", ErrNilBytes, name)
	}

	if len(dst) < min {
		return fmt.Errorf("%w: %s has %d bytes, need at least %d", ciphers.ErrInvalidLength, name, len(dst), min)
	}

	return nil
}
