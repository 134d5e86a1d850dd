package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretSamplerBoundAndRange(t *testing.T) {
	q := uint64(15361)
	s := NewSecretSampler(q, 1)
	src := NewDeterministicSource([]byte("sampler-seed"))

	dst := make([]uint64, 256)
	s.Sample(dst, src)

	for _, c := range dst {
		require.Less(t, c, q)
		require.True(t, c == 0 || c == 1 || c == q-1)
	}
}

func TestSecretSamplerOddLengthPinsLastCoefficient(t *testing.T) {
	q := uint64(32353)
	s := NewSecretSampler(q, 1)
	src := NewDeterministicSource([]byte("sampler-odd-seed"))

	dst := make([]uint64, 337)
	s.Sample(dst, src)

	require.Equal(t, uint64(0), dst[336])
}
