package rlwe

import (
	"fmt"

	"github.com/vscrypto/openssl-ringlwe/ring"
)

// Decapsulate computes w = s1*u pointwise in the Fourier domain,
// inverse-NTT's it back to the time domain and cyclotomic-folds it when
// the ring dimension is prime, then reconciles it against the
// cross-rounding hint to recover the shared bit string. Ported from
// KEM1_Decapsulate. w is zeroized before return. A parameter descriptor
// mismatch between sk and rec is rejected with ErrParameterMismatch
// rather than silently combining incompatible keys.
func Decapsulate(sk *SecretKey, rec *Reconciliation) ([]uint64, error) {
	if sk.Params.Descriptor != rec.Params.Descriptor {
		return nil, fmt.Errorf("rlwe: secret key and reconciliation vector: %w", ErrParameterMismatch)
	}
	p := sk.Params
	n := p.N
	q := p.Q
	ntt := p.NTT()

	wFourier := make([]uint64, n)
	for i := 0; i < n; i++ {
		wFourier[i] = ring.MulMod(sk.S1[i], rec.U[i], q)
	}

	w := make([]uint64, n)
	ntt.Backward(wFourier, w)
	ring.Zero(wFourier)

	if p.IsPrimeDimension() {
		cyclotomicFoldRaw(w, q)
	}

	mu := p.Rec(w, rec.CR)
	ring.Zero(w)

	return mu, nil
}
