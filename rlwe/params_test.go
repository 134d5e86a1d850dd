package rlwe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByNIDKnownSets(t *testing.T) {
	for _, name := range []string{
		"256_15361", "337_32353", "433_35507", "512_25601", "541_41117",
		"631_44171", "739_47297", "821_49261", "1024_40961",
	} {
		p, err := ByNID(name)
		require.NoError(t, err)
		require.Len(t, p.A, p.N)
		for _, c := range p.A {
			require.Less(t, c, p.Q)
		}
	}
}

func TestByNIDUnknown(t *testing.T) {
	_, err := ByNID("999_1")
	require.ErrorIs(t, err, ErrUnknownParameter)
}

func TestDescriptorRoundTrip(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)

	got, err := ByDescriptor(p.Descriptor[:])
	require.NoError(t, err)
	require.Same(t, p, got)
}

func TestDescriptorPrefix(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)
	require.Equal(t, []byte("RLWE"), p.Descriptor[0:4])
	require.Equal(t, byte(0), p.Descriptor[4])
	require.Equal(t, byte(0), p.Descriptor[5])
	require.Equal(t, byte(1), p.Descriptor[6])
	require.Equal(t, byte(0), p.Descriptor[7])
}

func TestMuWords(t *testing.T) {
	p256, _ := ByNID("256_15361")
	require.Equal(t, 4, p256.MuWords)

	p337, _ := ByNID("337_32353")
	require.Equal(t, 6, p337.MuWords)
}
