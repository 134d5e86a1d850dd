package ring

// TwistedNTT is component C: the negacyclic NTT for power-of-two ring
// dimension n, used for multiplication modulo x^n+1. It turns the cyclic
// Radix2NTT into a negacyclic one by weighting coefficients with powers of
// a 2n-th root of unity before/after the plain cyclic transform — the
// discrete weighted transform (DWT): weight, transform, unweight.
type TwistedNTT struct {
	cyclic   *Radix2NTT
	n        int
	q        uint64
	psi      []uint64 // psi^i, i in [0, n)
	psiInv   []uint64 // psi^-i, i in [0, n)
}

// NewTwistedNTT builds a TwistedNTT for ring dimension n (a power of two)
// over prime modulus q, with 2n | (q-1).
func NewTwistedNTT(n int, q uint64) *TwistedNTT {
	psiRoot := NthRoot(uint64(2*n), q)
	psi := make([]uint64, n)
	psiInv := make([]uint64, n)
	psiRootInv := ModInverse(psiRoot, q)
	psi[0], psiInv[0] = 1, 1
	for i := 1; i < n; i++ {
		psi[i] = MulMod(psi[i-1], psiRoot, q)
		psiInv[i] = MulMod(psiInv[i-1], psiRootInv, q)
	}
	omega := MulMod(psiRoot, psiRoot, q)
	cyclic := &Radix2NTT{
		n:        n,
		q:        q,
		logN:     Log2(uint64(n)),
		omega:    omega,
		omegaInv: ModInverse(omega, q),
		nInv:     ModInverse(uint64(n), q),
	}
	return &TwistedNTT{cyclic: cyclic, n: n, q: q, psi: psi, psiInv: psiInv}
}

// Len implements NumberTheoreticTransformer.
func (t *TwistedNTT) Len() int { return t.n }

// Modulus implements NumberTheoreticTransformer.
func (t *TwistedNTT) Modulus() uint64 { return t.q }

// Forward computes the negacyclic NTT image of in into out (may alias):
// weight by psi^i, then run the plain cyclic NTT of length n.
func (t *TwistedNTT) Forward(in, out []uint64) {
	q := t.q
	for i := range in {
		out[i] = MulMod(in[i], t.psi[i], q)
	}
	t.cyclic.Forward(out, out)
}

// Backward computes the inverse negacyclic NTT of in into out (may alias):
// run the plain inverse cyclic NTT (which already scales by n^-1), then
// unweight by psi^-i. Always fully reduced into [0, q) — see DESIGN.md's
// "Twisted-inverse final canonicalization" decision.
func (t *TwistedNTT) Backward(in, out []uint64) {
	q := t.q
	t.cyclic.Backward(in, out)
	for i := range out {
		out[i] = MulMod(out[i], t.psiInv[i], q)
	}
}
