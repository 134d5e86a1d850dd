package ring

// Bluestein auxiliary NTT-friendly primes, used as the two CRT fields that
// let BluesteinNTT compute an exact-integer length-n cyclic convolution
// via power-of-two transforms even though q itself has no power-of-two
// factor large enough to run one directly. Grounded on the weight/
// convolve/CRT-combine/de-weight structure of the original C source's
// Bluestein tables (see DESIGN.md's Open Question #4/#5), with the
// literal chirp tables replaced by values derived at construction time
// since the byte-exact tables were filtered out of the retrieved pack.
const (
	bluesteinAuxPrime0 uint64 = 8816641
	bluesteinAuxPrime1 uint64 = 17633281
)

// BluesteinNTT is component D: the cyclic NTT for prime ring dimension n,
// computed by reducing the length-n DFT to a convolution (Bluestein's
// chirp-z algorithm) and evaluating that convolution exactly over Z using
// two auxiliary power-of-two NTTs, recombined by CRT, then finally reduced
// mod q.
type BluesteinNTT struct {
	n int
	q uint64
	N int // convolution length, a power of two >= 2n-1

	chirp    []uint64 // psi^(i^2 mod 2n) mod q, i in [0, n)
	chirpInv []uint64 // modular inverse of chirp, i in [0, n)

	ntt0, ntt1   *Radix2NTT
	invQ0ModQ1   uint64
}

// NewBluesteinNTT builds a BluesteinNTT for prime ring dimension n over
// prime modulus q, with 2n | (q-1).
func NewBluesteinNTT(n int, q uint64) *BluesteinNTT {
	psi := NthRoot(uint64(2*n), q)

	chirp := make([]uint64, n)
	chirpInv := make([]uint64, n)
	chirp[0] = 1
	chirpInv[0] = 1
	exp := uint64(0)
	for i := 1; i < n; i++ {
		// i^2 mod 2n, built incrementally: i^2 - (i-1)^2 = 2i-1.
		exp = (exp + uint64(2*i-1)) % uint64(2*n)
		chirp[i] = ModExp(psi, exp, q)
		chirpInv[i] = ModInverse(chirp[i], q)
	}

	N := int(NextPowerOfTwo(uint64(2*n - 1)))
	return &BluesteinNTT{
		n:          n,
		q:          q,
		N:          N,
		chirp:      chirp,
		chirpInv:   chirpInv,
		ntt0:       NewRadix2NTT(N, bluesteinAuxPrime0),
		ntt1:       NewRadix2NTT(N, bluesteinAuxPrime1),
		invQ0ModQ1: ModInverse(bluesteinAuxPrime0%bluesteinAuxPrime1, bluesteinAuxPrime1),
	}
}

// Len implements NumberTheoreticTransformer.
func (t *BluesteinNTT) Len() int { return t.n }

// Modulus implements NumberTheoreticTransformer.
func (t *BluesteinNTT) Modulus() uint64 { return t.q }

// buildFilter lays out root (length n) into a symmetric length-N filter:
// filt[0] = root[0], filt[i] = filt[N-i] = root[i] for i in [1, n), and
// zero everywhere else. This is the convolution kernel that realizes
// omega^{jk} = chirp[j] * chirp[k] * chirpInv[j-k] without the original
// C source's N/2 index offset (see DESIGN.md).
func (t *BluesteinNTT) buildFilter(root []uint64) []uint64 {
	filt := make([]uint64, t.N)
	filt[0] = root[0]
	for i := 1; i < t.n; i++ {
		filt[i] = root[i]
		filt[t.N-i] = root[i]
	}
	return filt
}

// crtCombine reconstructs the unique integer in [0, q0*q1) congruent to r0
// mod q0 and r1 mod q1, then reduces it mod q.
func (t *BluesteinNTT) crtCombine(r0, r1 uint64) uint64 {
	q0, q1 := bluesteinAuxPrime0, bluesteinAuxPrime1
	diff := SubMod(r1, r0%q1, q1)
	k := MulMod(diff, t.invQ0ModQ1, q1)
	v := r0 + q0*k // < q0*q1, fits in uint64
	return v % t.q
}

// convolve computes conv[k] = sum_j a[j]*root[|k-j|] for k in [0, n), from
// the length-n weighted input a and the length-n sequence root, as a
// length-N cyclic convolution of the zero-padded a against
// buildFilter(root). It runs in the two auxiliary power-of-two NTT
// fields, recombines by CRT, and finally reduces mod q.
func (t *BluesteinNTT) convolve(a, root []uint64) []uint64 {
	filt := t.buildFilter(root)

	padded0 := make([]uint64, t.N)
	padded1 := make([]uint64, t.N)
	copy(padded0, a)
	copy(padded1, a)

	f0 := make([]uint64, t.N)
	f1 := make([]uint64, t.N)
	copy(f0, filt)
	copy(f1, filt)

	t.ntt0.Forward(padded0, padded0)
	t.ntt0.Forward(f0, f0)
	for i := range padded0 {
		padded0[i] = MulMod(padded0[i], f0[i], bluesteinAuxPrime0)
	}
	t.ntt0.Backward(padded0, padded0)

	t.ntt1.Forward(padded1, padded1)
	t.ntt1.Forward(f1, f1)
	for i := range padded1 {
		padded1[i] = MulMod(padded1[i], f1[i], bluesteinAuxPrime1)
	}
	t.ntt1.Backward(padded1, padded1)

	out := make([]uint64, t.n)
	for k := 0; k < t.n; k++ {
		out[k] = t.crtCombine(padded0[k], padded1[k])
	}
	return out
}

// Forward computes the length-n cyclic NTT of in into out (may alias: in
// is read in full before out is written).
func (t *BluesteinNTT) Forward(in, out []uint64) {
	q := t.q
	weighted := make([]uint64, t.n)
	for j := 0; j < t.n; j++ {
		weighted[j] = MulMod(in[j], t.chirp[j], q)
	}
	conv := t.convolve(weighted, t.chirpInv)
	for k := 0; k < t.n; k++ {
		out[k] = MulMod(t.chirp[k], conv[k], q)
	}
}

// Backward computes the inverse length-n cyclic NTT of in into out (may
// alias: in is read in full before out is written), fully reduced into
// [0, q).
func (t *BluesteinNTT) Backward(in, out []uint64) {
	q := t.q
	weighted := make([]uint64, t.n)
	for j := 0; j < t.n; j++ {
		weighted[j] = MulMod(in[j], t.chirpInv[j], q)
	}
	conv := t.convolve(weighted, t.chirp)
	nInv := ModInverse(uint64(t.n), q)
	for k := 0; k < t.n; k++ {
		out[k] = MulMod(nInv, MulMod(t.chirpInv[k], conv[k], q), q)
	}
}
