package ring

// Radix2NTT is the power-of-two length, plain cyclic NTT of component B:
// a standard iterative Cooley-Tukey transform over Z_q for N a power of two
// and q an N-NTT-friendly prime (N | q-1). It is used directly as the
// auxiliary convolution engine inside BluesteinNTT (component D), and as
// the cyclic core that TwistedNTT (component C) wraps with a psi-power
// weighting to turn it negacyclic.
//
// Table construction and dispatch shape are grounded on
// Pro7ech-lattigo/ring/ntt.go's NumberTheoreticTransformer interface and
// NTTTable; the butterfly network itself follows the textbook iterative
// Cooley-Tukey layout (explicit bit-reversal permutation, then per-stage
// butterflies) rather than the "scrambled in/out" variant the original C
// source and tuneinsight-lattigo use, so that forward/inverse correctness
// can be verified by direct inspection rather than by matching an
// undocumented index convention (see DESIGN.md's Open Question notes).
type Radix2NTT struct {
	n        int
	q        uint64
	logN     uint64
	omega    uint64 // primitive n-th root of unity mod q
	omegaInv uint64
	nInv     uint64 // n^-1 mod q
}

// NewRadix2NTT builds a Radix2NTT engine for transform length n (a power of
// two) over prime modulus q, with n | (q-1).
func NewRadix2NTT(n int, q uint64) *Radix2NTT {
	if !IsPowerOfTwo(uint64(n)) {
		panic("ring: Radix2NTT length must be a power of two")
	}
	omega := NthRoot(uint64(n), q)
	return &Radix2NTT{
		n:        n,
		q:        q,
		logN:     Log2(uint64(n)),
		omega:    omega,
		omegaInv: ModInverse(omega, q),
		nInv:     ModInverse(uint64(n), q),
	}
}

// Len implements NumberTheoreticTransformer.
func (t *Radix2NTT) Len() int { return t.n }

// Modulus implements NumberTheoreticTransformer.
func (t *Radix2NTT) Modulus() uint64 { return t.q }

func bitReversePermute(a []uint64, logN uint64) {
	n := len(a)
	for i := 0; i < n; i++ {
		j := int(BitReverse64(uint64(i), logN))
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
}

func (t *Radix2NTT) transform(in, out []uint64, root uint64) {
	q := t.q
	n := t.n
	if &in[0] != &out[0] {
		copy(out, in)
	}
	bitReversePermute(out, t.logN)

	for m := uint64(2); m <= uint64(n); m <<= 1 {
		half := m >> 1
		wm := ModExp(root, uint64(n)/m, q)
		for k := uint64(0); k < uint64(n); k += m {
			w := uint64(1)
			for j := uint64(0); j < half; j++ {
				u := out[k+j]
				v := MulMod(out[k+j+half], w, q)
				out[k+j] = AddMod(u, v, q)
				out[k+j+half] = SubMod(u, v, q)
				w = MulMod(w, wm, q)
			}
		}
	}
}

// Forward computes the length-n cyclic NTT of in into out (may alias).
func (t *Radix2NTT) Forward(in, out []uint64) {
	t.transform(in, out, t.omega)
}

// Backward computes the inverse length-n cyclic NTT of in into out (may
// alias), fully reduced into [0, q).
func (t *Radix2NTT) Backward(in, out []uint64) {
	t.transform(in, out, t.omegaInv)
	q := t.q
	for i := range out {
		out[i] = MulMod(out[i], t.nInv, q)
	}
}
