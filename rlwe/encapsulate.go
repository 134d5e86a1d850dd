package rlwe

import "github.com/vscrypto/openssl-ringlwe/ring"

// Encapsulate samples e0, e1, e2; forward-NTTs e0, e1; derives
// u = e0*a + e1 and v = e0*b (pointwise in the
// Fourier domain); inverse-NTT v back to the time domain, cyclotomic-fold
// it when the ring dimension is prime, add e2, then reconcile v into a
// shared bit string and cross-rounding hint. Ported from
// KEM1_Encapsulate. e0, e1, e2 and v are zeroized before return.
func Encapsulate(peer *PublicKey, src ring.Source) (*Reconciliation, []uint64, error) {
	p := peer.Params
	n := p.N
	q := p.Q
	ntt := p.NTT()

	e0Time := make([]uint64, n)
	e1Time := make([]uint64, n)
	e2 := make([]uint64, n)
	p.Sampler().Sample(e0Time, src)
	p.Sampler().Sample(e1Time, src)
	p.Sampler().Sample(e2, src)

	e0 := make([]uint64, n)
	e1 := make([]uint64, n)
	ntt.Forward(e0Time, e0)
	ntt.Forward(e1Time, e1)
	ring.Zero(e0Time)
	ring.Zero(e1Time)

	u := make([]uint64, n)
	vFourier := make([]uint64, n)
	for i := 0; i < n; i++ {
		u[i] = ring.AddMod(ring.MulMod(e0[i], p.A[i], q), e1[i], q)
		vFourier[i] = ring.MulMod(e0[i], peer.B[i], q)
	}
	ring.Zero(e0)
	ring.Zero(e1)

	v := make([]uint64, n)
	ntt.Backward(vFourier, v)
	ring.Zero(vFourier)

	if p.IsPrimeDimension() {
		cyclotomicFoldRaw(v, q)
	}
	for i := 0; i < n; i++ {
		v[i] = ring.AddMod(v[i], e2[i], q)
	}
	ring.Zero(e2)

	mu, cr := p.RoundAndCrossRound(v, src)
	ring.Zero(v)

	return &Reconciliation{Params: p, U: u, CR: cr}, mu, nil
}

// cyclotomicFoldRaw maps a length-n object in Z_q[x]/(x^n-1) to the
// corresponding element of Z_q[x]/(1+x+...+x^{n-1}) (needed whenever n is
// prime): subtract the last coefficient from every other one, then pin
// the last coefficient to 0.
func cyclotomicFoldRaw(v []uint64, q uint64) {
	n := len(v)
	last := v[n-1]
	for i := 0; i < n-1; i++ {
		v[i] = ring.SubMod(v[i], last, q)
	}
	v[n-1] = 0
}
