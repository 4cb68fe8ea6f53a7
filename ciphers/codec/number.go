package codec

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when an integer does not fit the requested width,
// or when a byte sequence holds a value wider than 64 bits.
var ErrOverflow = errors.New("codec: integer overflows requested width")

// ErrInvalidWidth is returned when a requested byte width is not positive.
var ErrInvalidWidth = errors.New("codec: invalid byte width")

const u64Width = 8

// NumberToBytesBE encodes n as a fixed-width big-endian unsigned integer of
// exactly width bytes, zero-padded on the left. It returns ErrOverflow when
// n needs more than width bytes; the value is never silently truncated.
//
// Example:
//
//	codec.NumberToBytesBE(0x0102, 4) // [0x00 0x00 0x01 0x02]
func NumberToBytesBE(n uint64, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	if width < u64Width && n >= uint64(1)<<(8*uint(width)) {
		return nil, fmt.Errorf("%w: %d does not fit in %d bytes", ErrOverflow, n, width)
	}

	out := make([]byte, width)
	for i := 0; i < width && i < u64Width; i++ {
		out[width-1-i] = byte(n >> (8 * uint(i)))
	}

	return out, nil
}

// BytesToNumberBE decodes a big-endian unsigned integer from b. Sequences
// longer than 8 bytes are accepted only when the extra leading bytes are
// zero; otherwise ErrOverflow is returned. An empty sequence decodes to 0.
func BytesToNumberBE(b []byte) (uint64, error) {
	if len(b) > u64Width {
		for _, v := range b[:len(b)-u64Width] {
			if v != 0 {
				return 0, fmt.Errorf("%w: %d significant bytes", ErrOverflow, len(b))
			}
		}

		b = b[len(b)-u64Width:]
	}

	var n uint64
	for _, v := range b {
		n = n<<8 | uint64(v)
	}

	return n, nil
}
