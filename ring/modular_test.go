package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubMod(t *testing.T) {
	q := uint64(15361)
	for a := uint64(0); a < q; a += 137 {
		for b := uint64(0); b < q; b += 211 {
			require.Equal(t, (a+b)%q, AddMod(a, b, q))
			require.Equal(t, (a+q-b)%q, SubMod(a, b, q))
		}
	}
}

func TestMulMod(t *testing.T) {
	q := uint64(32353)
	require.Equal(t, uint64(0), MulMod(0, 12345, q))
	require.Equal(t, (1234*5678)%q, MulMod(1234, 5678, q))
}

func TestModExpModInverse(t *testing.T) {
	q := uint64(15361)
	for x := uint64(1); x < 50; x++ {
		inv := ModInverse(x, q)
		require.Equal(t, uint64(1), MulMod(x, inv, q))
	}
	require.Equal(t, uint64(1), ModExp(7, 0, q))
	require.Equal(t, uint64(7), ModExp(7, 1, q))
}

func TestCondSub(t *testing.T) {
	q := uint64(100)
	require.Equal(t, uint64(5), CondSub(5, q))
	require.Equal(t, uint64(20), CondSub(120, q))
}
