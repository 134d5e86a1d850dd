package ring

// NumberTheoreticTransformer is the capability object an NTT dispatch
// table collapses to: rather than storing a function pointer per
// parameter set and branching on it in hot loops, each parameter set
// holds exactly one concrete implementation (*Radix2NTT for the
// auxiliary fields it is built on, *TwistedNTT for even n, *BluesteinNTT
// for prime n), selected once at construction and never switched on
// again. Grounded on Pro7ech-lattigo/ring/ntt.go's
// NumberTheoreticTransformer interface.
type NumberTheoreticTransformer interface {
	// Forward computes the NTT image of in into out. in and out may alias.
	Forward(in, out []uint64)
	// Backward computes the inverse NTT of in into out, fully reduced into
	// [0, q) (see DESIGN.md's "Twisted-inverse final canonicalization"
	// decision: this package always canonicalizes, unlike the original C).
	Backward(in, out []uint64)
	// Len returns the transform length (== n for Radix2NTT and TwistedNTT,
	// == the ring dimension for BluesteinNTT even though its internal
	// convolution runs at a larger power-of-two length).
	Len() int
	// Modulus returns q.
	Modulus() uint64
}
