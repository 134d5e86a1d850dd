package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(2))
	require.True(t, IsPrime(15361))
	require.True(t, IsPrime(32353))
	require.False(t, IsPrime(1))
	require.False(t, IsPrime(1024))
}

func TestNthRoot(t *testing.T) {
	q := uint64(15361)
	n := uint64(256)
	root := NthRoot(n, q)
	require.Equal(t, uint64(1), ModExp(root, n, q))
	// must be primitive: no smaller divisor power equals 1
	for _, f := range Factorize(n) {
		require.NotEqual(t, uint64(1), ModExp(root, n/f, q))
	}
}

func TestBitReverse64(t *testing.T) {
	require.Equal(t, uint64(0b001), BitReverse64(0b100, 3))
	require.Equal(t, uint64(0b100), BitReverse64(0b001, 3))
}

func TestIsPowerOfTwoNextPowerOfTwo(t *testing.T) {
	require.True(t, IsPowerOfTwo(1024))
	require.False(t, IsPowerOfTwo(1023))
	require.Equal(t, uint64(1024), NextPowerOfTwo(673))
	require.Equal(t, uint64(1), NextPowerOfTwo(0))
}
