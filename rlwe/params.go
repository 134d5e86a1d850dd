package rlwe

import (
	"fmt"
	"sync"

	"github.com/vscrypto/openssl-ringlwe/ring"
)

// Parameters is the immutable per-parameter-set record: ring dimension,
// modulus, the fixed public polynomial `a` (already in Fourier domain),
// the NTT engine appropriate to n's parity, the secret sampler, and the
// reconciliation thresholds. Grounded on Pro7ech-lattigo/rlwe/params.go's
// Parameters struct shape — a single struct holding every precomputed
// constant a scheme needs, built once and shared read-only thereafter.
type Parameters struct {
	N int
	Q uint64

	// A is the fixed public ring element, already forward-NTT'd into the
	// Fourier domain. Never recomputed after construction.
	A []uint64

	ntt     ring.NumberTheoreticTransformer
	sampler *ring.SecretSampler

	QMod4 uint64
	Q14   uint64
	Q24   uint64
	Q34   uint64

	// Open-interval bounds for rec, derived from the mu/cr quadrant
	// structure of round_and_cross_round (see DESIGN.md): for each
	// cross-rounding bit, the window covers the quadrant where mu=1 and
	// reaches halfway to the two quadrants beside it, so w decodes to mu
	// whenever it lies within about q/8 of v. cr=0: (R0L, R0U) around
	// (Q24, Q34); cr=1: (R1L, R1U) around (Q14, Q24].
	R0L, R0U uint64
	R1L, R1U uint64

	// MuWords is the number of 64-bit words needed to pack the
	// reconciliation output, excluding the pinned zero coefficient when N
	// is odd.
	MuWords int

	Descriptor [32]byte
}

// NTT returns the parameter set's number-theoretic transformer.
func (p *Parameters) NTT() ring.NumberTheoreticTransformer { return p.ntt }

// Sampler returns the parameter set's bounded secret sampler.
func (p *Parameters) Sampler() *ring.SecretSampler { return p.sampler }

// IsPrimeDimension reports whether N is odd (the Bluestein/cyclotomic-fold
// path), as opposed to even N (the twisted-NTT path).
func (p *Parameters) IsPrimeDimension() bool { return p.N%2 != 0 }

// supportedSets lists the nine supported (n, q) pairs.
var supportedSets = [][2]uint64{
	{256, 15361},
	{337, 32353},
	{433, 35507},
	{512, 25601},
	{541, 41117},
	{631, 44171},
	{739, 47297},
	{821, 49261},
	{1024, 40961},
}

var (
	registryOnce sync.Once
	byNID        map[string]*Parameters
	byDescriptor map[[32]byte]*Parameters
)

func nidFor(n int, q uint64) string {
	return fmt.Sprintf("%d_%d", n, q)
}

func buildRegistry() {
	byNID = make(map[string]*Parameters, len(supportedSets))
	byDescriptor = make(map[[32]byte]*Parameters, len(supportedSets))
	for _, set := range supportedSets {
		n, q := int(set[0]), set[1]
		p := newParameters(n, q)
		byNID[nidFor(n, q)] = p
		byDescriptor[p.Descriptor] = p
	}
}

func registry() (map[string]*Parameters, map[[32]byte]*Parameters) {
	registryOnce.Do(buildRegistry)
	return byNID, byDescriptor
}

// ByNID looks up a parameter set by its "n_q" name, e.g. "256_15361".
func ByNID(name string) (*Parameters, error) {
	byName, _ := registry()
	p, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("rlwe: nid %q: %w", name, ErrUnknownParameter)
	}
	return p, nil
}

// ByDescriptor looks up a parameter set by its 32-byte wire descriptor.
func ByDescriptor(desc []byte) (*Parameters, error) {
	if len(desc) != 32 {
		return nil, fmt.Errorf("rlwe: descriptor length %d: %w", len(desc), ErrInvalidFormat)
	}
	var key [32]byte
	copy(key[:], desc)
	_, byDesc := registry()
	p, ok := byDesc[key]
	if !ok {
		return nil, fmt.Errorf("rlwe: descriptor %x: %w", key, ErrUnknownParameter)
	}
	return p, nil
}

// secretBound is B, the symmetric bound on sampled secret and error
// coefficients. The literal per-parameter-set sampler tables of the
// original source were filtered out of the retrieved pack; this package
// uses a single ternary bound for every supported (n, q), which keeps the
// sampler well clear of the [-q/4, q/4] region reconciliation relies on
// for every tabulated modulus (see DESIGN.md's Open Question decisions).
const secretBound = 1

func newParameters(n int, q uint64) *Parameters {
	a := expandA(n, q)

	var transformer ring.NumberTheoreticTransformer
	if n%2 == 0 {
		transformer = ring.NewTwistedNTT(n, q)
	} else {
		transformer = ring.NewBluesteinNTT(n, q)
	}

	aFourier := make([]uint64, n)
	transformer.Forward(a, aFourier)

	effBits := n
	if n%2 != 0 {
		effBits = n - 1
	}
	muWords := (effBits + 63) / 64

	q14 := q / 4
	q24 := q / 2
	q34 := (3 * q) / 4

	p := &Parameters{
		N:       n,
		Q:       q,
		A:       aFourier,
		ntt:     transformer,
		sampler: ring.NewSecretSampler(q, secretBound),
		QMod4:   q % 4,
		Q14:     q14,
		Q24:     q24,
		Q34:     q34,
		R0L:     (q14 + q24) / 2,
		R0U:     (q34 + q) / 2,
		R1L:     q14 / 2,
		R1U:     (q24 + q34) / 2,
		MuWords: muWords,
	}
	p.Descriptor = computeDescriptor(n, q, aFourier)
	return p
}

// expandA deterministically derives the n coefficients of the public
// polynomial `a` from (n, q) via a ChaCha20 stream keyed on a domain-
// separated hash of the parameter set, rather than shipping a literal
// multi-megabyte table per parameter set (see DESIGN.md's Open Question
// decisions).
func expandA(n int, q uint64) []uint64 {
	seed := aSeed(n, q)
	src := ring.NewDeterministicSource(seed[:])
	a := make([]uint64, n)
	for i := range a {
		a[i] = src.Random64() % q
	}
	return a
}
