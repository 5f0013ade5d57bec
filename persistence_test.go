package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSCRoundTrip(t *testing.T) {
	orig := NewCSC(3, 3,
		[]int{0, 2, 3, 5},
		[]int{0, 2, 1, 0, 2},
		[]float64{1, 3, 2, 4, 5},
	)

	buf, err := orig.MarshalBinary()
	require.NoError(t, err)

	var got CSC
	require.NoError(t, got.UnmarshalBinary(buf))
	assert.Equal(t, orig, &got)

	var stream bytes.Buffer
	n, err := orig.MarshalBinaryTo(&stream)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	var got2 CSC
	n, err = got2.UnmarshalBinaryFrom(&stream)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, orig, &got2)
}

func TestPatternRoundTrip(t *testing.T) {
	orig := NewPattern(4, 2,
		[]int{0, 3, 4},
		[]int{0, 1, 3, 2},
	)

	buf, err := orig.MarshalBinary()
	require.NoError(t, err)

	var got Pattern
	require.NoError(t, got.UnmarshalBinary(buf))
	assert.Equal(t, orig, &got)

	var stream bytes.Buffer
	_, err = orig.MarshalBinaryTo(&stream)
	require.NoError(t, err)

	var got2 Pattern
	_, err = got2.UnmarshalBinaryFrom(&stream)
	require.NoError(t, err)
	assert.Equal(t, orig, &got2)
}

func TestUnmarshalMalformed(t *testing.T) {
	orig := NewCSC(3, 2,
		[]int{0, 1, 2},
		[]int{0, 1},
		[]float64{1, 2},
	)
	buf, err := orig.MarshalBinary()
	require.NoError(t, err)

	var m CSC
	assert.Error(t, m.UnmarshalBinary(buf[:10]), "truncated header")
	assert.Error(t, m.UnmarshalBinary(buf[:len(buf)-8]), "truncated body")

	// corrupt a row index so it lands out of range
	bad := append([]byte(nil), buf...)
	bad[3*8+3*8] = 0xff
	assert.Error(t, m.UnmarshalBinary(bad))
}
