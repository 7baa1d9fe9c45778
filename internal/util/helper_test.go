package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []byte{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 9
	require.Equal(byte(1), src[0])

	require.Equal([]byte{1, 2, 3, 0}, CloneSlice(src, 4))
	require.Equal([]byte{1}, CloneSlice(src, 1))
}

func TestReversed(t *testing.T) {
	require := require.New(t)

	src := []byte{0xAA, 0xBB, 0xCC}
	require.Equal([]byte{0xCC, 0xBB, 0xAA}, Reversed(src, true))
	require.Equal([]byte{0xAA, 0xBB, 0xCC}, Reversed(src, false))
	require.Equal([]byte{0xAA, 0xBB, 0xCC}, src)

	empty := []byte{}
	ReverseInPlace(empty)
	require.Empty(empty)
}
