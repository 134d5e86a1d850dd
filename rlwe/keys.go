package rlwe

import "github.com/vscrypto/openssl-ringlwe/ring"

// PublicKey is b = s1*a + s0, stored in the Fourier domain, tagged with
// the parameter set it was generated under.
type PublicKey struct {
	Params *Parameters
	B      []uint64
}

// Clone returns a deep copy of pk, the Go counterpart of the original
// source's RLWE_PUB_dup: a caller that wants an independent copy never
// aliases another owner's buffer.
func (pk *PublicKey) Clone() *PublicKey {
	b := make([]uint64, len(pk.B))
	copy(b, pk.B)
	return &PublicKey{Params: pk.Params, B: b}
}

// SecretKey is the pair (s0, s1), both stored in the Fourier domain after
// generation.
type SecretKey struct {
	Params *Parameters
	S0, S1 []uint64
}

// Clone returns a deep copy of sk.
func (sk *SecretKey) Clone() *SecretKey {
	s0 := make([]uint64, len(sk.S0))
	s1 := make([]uint64, len(sk.S1))
	copy(s0, sk.S0)
	copy(s1, sk.S1)
	return &SecretKey{Params: sk.Params, S0: s0, S1: s1}
}

// Destroy zeroizes sk's coefficients in place. Callers must call this on
// every exit path once the secret key is no longer needed.
func (sk *SecretKey) Destroy() {
	ring.Zero(sk.S0)
	ring.Zero(sk.S1)
}

// KeyPair bundles a PublicKey and SecretKey generated together, the Go
// counterpart of the original source's RLWE_PAIR.
type KeyPair struct {
	Public *PublicKey
	Secret *SecretKey
}

// Clone returns a deep copy of the pair (RLWE_PAIR_dup).
func (kp *KeyPair) Clone() *KeyPair {
	return &KeyPair{Public: kp.Public.Clone(), Secret: kp.Secret.Clone()}
}

// Destroy zeroizes the pair's secret half.
func (kp *KeyPair) Destroy() {
	kp.Secret.Destroy()
}

// Reconciliation is the message Bob sends back to Alice after
// Encapsulate: the public ring element u and the cross-rounding hint cr.
// It carries no secret material of its own.
type Reconciliation struct {
	Params *Parameters
	U      []uint64 // Fourier domain, length Params.N
	CR     []uint64 // length Params.MuWords
}

// Clone returns a deep copy of r.
func (r *Reconciliation) Clone() *Reconciliation {
	u := make([]uint64, len(r.U))
	cr := make([]uint64, len(r.CR))
	copy(u, r.U)
	copy(cr, r.CR)
	return &Reconciliation{Params: r.Params, U: u, CR: cr}
}
