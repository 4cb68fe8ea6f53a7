package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrOddLength is returned when a hex string has an odd number of digits.
var ErrOddLength = errors.New("codec: hex string has odd length")

// ErrInvalidByte is returned when a hex string contains a non-hex digit.
// The error message carries the offending digit pair and its character index.
var ErrInvalidByte = errors.New("codec: invalid hex digits")

// BytesToHex returns the lowercase hex encoding of b, two digits per byte,
// no separators. The output length is always 2*len(b).
//
// Example:
//
//	codec.BytesToHex([]byte{0xde, 0xad}) // "dead"
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string into a freshly allocated byte sequence.
// Decoding is all-or-nothing: an odd-length input returns ErrOddLength and a
// non-hex digit returns ErrInvalidByte naming the offending pair and its
// index, never a partial result. Both lowercase and uppercase digits are
// accepted; encoding always emits lowercase.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddLength, len(s))
	}

	out := make([]byte, hex.DecodedLen(len(s)))

	if _, err := hex.Decode(out, []byte(s)); err != nil {
		for i := 0; i < len(s); i += 2 {
			if !isHexDigit(s[i]) || !isHexDigit(s[i+1]) {
				return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidByte, s[i:i+2], i)
			}
		}

		return nil, fmt.Errorf("codec: decode hex: %w", err)
	}

	return out, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
