package rlwe

import "github.com/vscrypto/openssl-ringlwe/ring"

// Generate samples s0, s1, forward-NTTs each independently into the
// Fourier domain, then computes the public key
// b = s1*a + s0 pointwise. Ported from KEM1_Generate, but — per
// DESIGN.md's Open Question decision — forward-transforms s0 and s1 as
// two independently addressed slices rather than through the original's
// pointer-cast-over-a-contiguous-buffer trick.
func Generate(p *Parameters, src ring.Source) (*KeyPair, error) {
	n := p.N
	q := p.Q

	s0Time := make([]uint64, n)
	s1Time := make([]uint64, n)
	p.Sampler().Sample(s0Time, src)
	p.Sampler().Sample(s1Time, src)

	s0 := make([]uint64, n)
	s1 := make([]uint64, n)
	ntt := p.NTT()
	ntt.Forward(s0Time, s0)
	ntt.Forward(s1Time, s1)
	ring.Zero(s0Time)
	ring.Zero(s1Time)

	b := make([]uint64, n)
	for i := 0; i < n; i++ {
		b[i] = ring.AddMod(ring.MulMod(s1[i], p.A[i], q), s0[i], q)
	}

	return &KeyPair{
		Public: &PublicKey{Params: p, B: b},
		Secret: &SecretKey{Params: p, S0: s0, S1: s1},
	}, nil
}
