package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRadix2NTTIdentity(t *testing.T) {
	n, q := 1024, uint64(8816641)
	nt := NewRadix2NTT(n, q)

	src := NewDeterministicSource([]byte("radix2-identity-seed"))
	in := make([]uint64, n)
	for i := range in {
		in[i] = src.Random64() % q
	}

	freq := make([]uint64, n)
	nt.Forward(in, freq)
	back := make([]uint64, n)
	nt.Backward(freq, back)

	require.Equal(t, in, back)
	for _, c := range freq {
		require.Less(t, c, q)
	}
}

func TestRadix2NTTConvolutionMatchesSchoolbook(t *testing.T) {
	n, q := 16, uint64(8816641)
	nt := NewRadix2NTT(n, q)

	a := make([]uint64, n)
	b := make([]uint64, n)
	src := NewDeterministicSource([]byte("radix2-conv-seed"))
	for i := range a {
		a[i] = src.Random64() % q
		b[i] = src.Random64() % q
	}

	want := make([]uint64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want[(i+j)%n] = AddMod(want[(i+j)%n], MulMod(a[i], b[j], q), q)
		}
	}

	af := make([]uint64, n)
	bf := make([]uint64, n)
	nt.Forward(a, af)
	nt.Forward(b, bf)
	cf := make([]uint64, n)
	for i := range cf {
		cf[i] = MulMod(af[i], bf[i], q)
	}
	got := make([]uint64, n)
	nt.Backward(cf, got)

	require.Equal(t, want, got)
}
