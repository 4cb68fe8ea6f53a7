//go:build unit

package ciphers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_NilAllocates(t *testing.T) {
	t.Parallel()

	got, err := Output(nil, 8)

	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Equal(t, make([]byte, 8), got)
}

func TestOutput_ReslicesProvidedBuffer(t *testing.T) {
	t.Parallel()

	dst := make([]byte, 16)

	got, err := Output(dst, 8)

	require.NoError(t, err)
	require.Len(t, got, 8)

	got[0] = 0xAB

	assert.Equal(t, byte(0xAB), dst[0], "result must share memory with dst")
}

func TestOutput_ExactSize(t *testing.T) {
	t.Parallel()

	dst := make([]byte, 8)

	got, err := Output(dst, 8)

	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Same(t, &dst[0], &got[0])
}

func TestOutput_TooShort(t *testing.T) {
	t.Parallel()

	got, err := Output(make([]byte, 4), 8)

	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Nil(t, got)
}

func TestOutput_ZeroLength(t *testing.T) {
	t.Parallel()

	got, err := Output(nil, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnyOverlap(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 16)

	tests := []struct {
		name string
		x    []byte
		y    []byte
		want bool
	}{
		{
			name: "identical slices",
			x:    buf,
			y:    buf,
			want: true,
		},
		{
			name: "partial overlap",
			x:    buf[:8],
			y:    buf[4:12],
			want: true,
		},
		{
			name: "disjoint halves",
			x:    buf[:8],
			y:    buf[8:],
			want: false,
		},
		{
			name: "separate allocations",
			x:    make([]byte, 8),
			y:    make([]byte, 8),
			want: false,
		},
		{
			name: "empty never overlaps",
			x:    buf[:0],
			y:    buf,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, AnyOverlap(tt.x, tt.y))
		})
	}
}

func TestInexactOverlap(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 16)

	assert.False(t, InexactOverlap(buf, buf), "exact overlap is allowed for in-place work")
	assert.False(t, InexactOverlap(buf[:8], buf[:16]), "same start counts as exact")
	assert.True(t, InexactOverlap(buf[:8], buf[4:12]))
	assert.False(t, InexactOverlap(buf[:8], buf[8:]))
	assert.False(t, InexactOverlap(nil, buf))
}
