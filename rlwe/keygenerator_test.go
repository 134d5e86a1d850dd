package rlwe

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/vscrypto/openssl-ringlwe/ring"
)

func TestGenerateEncapsulateDecapsulateAgree(t *testing.T) {
	for _, name := range []string{"256_15361", "337_32353", "1024_40961"} {
		name := name
		t.Run(name, func(t *testing.T) {
			p, err := ByNID(name)
			require.NoError(t, err)

			src := ring.NewDeterministicSource([]byte("e2e-seed-" + name))

			alice, err := Generate(p, src)
			require.NoError(t, err)

			rec, muBob, err := Encapsulate(alice.Public, src)
			require.NoError(t, err)

			muAlice, err := Decapsulate(alice.Secret, rec)
			require.NoError(t, err)

			require.Equal(t, muBob, muAlice)
		})
	}
}

func TestGenerateEncapsulateDecapsulateAgreementRate(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)

	const trials = 200
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		src := ring.NewDeterministicSource([]byte{byte(i), byte(i >> 8)})

		alice, err := Generate(p, src)
		require.NoError(t, err)
		rec, muBob, err := Encapsulate(alice.Public, src)
		require.NoError(t, err)
		muAlice, err := Decapsulate(alice.Secret, rec)
		require.NoError(t, err)

		agree := 1.0
		if !equalWords(muAlice, muBob) {
			agree = 0.0
		}
		samples = append(samples, agree)
	}

	mean, err := stats.Mean(samples)
	require.NoError(t, err)
	require.Equal(t, 1.0, mean)
}

func equalWords(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParameterMismatchRejected(t *testing.T) {
	p1, err := ByNID("256_15361")
	require.NoError(t, err)
	p2, err := ByNID("337_32353")
	require.NoError(t, err)

	src := ring.NewDeterministicSource([]byte("mismatch-seed"))
	kp1, err := Generate(p1, src)
	require.NoError(t, err)
	kp2, err := Generate(p2, src)
	require.NoError(t, err)

	rec, _, err := Encapsulate(kp2.Public, src)
	require.NoError(t, err)

	_, err = Decapsulate(kp1.Secret, rec)
	require.ErrorIs(t, err, ErrParameterMismatch)
}

func TestSecretKeyDestroyZeroizes(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)
	src := ring.NewDeterministicSource([]byte("destroy-seed"))
	kp, err := Generate(p, src)
	require.NoError(t, err)

	kp.Secret.Destroy()
	for _, c := range kp.Secret.S0 {
		require.Equal(t, uint64(0), c)
	}
	for _, c := range kp.Secret.S1 {
		require.Equal(t, uint64(0), c)
	}
}
