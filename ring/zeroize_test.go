package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	s := []uint64{1, 2, 3, 4, 5}
	Zero(s)
	for _, v := range s {
		require.Equal(t, uint64(0), v)
	}
}

func TestZeroBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ZeroBytes(b)
	for _, v := range b {
		require.Equal(t, byte(0), v)
	}
}
