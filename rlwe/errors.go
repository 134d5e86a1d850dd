// Package rlwe implements the reconciliation-based Ring-LWE KEM: parameter
// registry, key generation, encapsulation, decapsulation, and the wire
// encodings for keys and reconciliation vectors. It is built on package
// ring for modular arithmetic, the NTT variants, and the secret sampler.
package rlwe

import "errors"

// Sentinel error kinds. Every core operation reports failure by
// returning one of these (wrapped with
// context via fmt.Errorf("...: %w", ...)) rather than aborting.
var (
	// ErrAllocation signals a buffer could not be allocated to the
	// requested size (length mismatch on a caller-supplied destination).
	ErrAllocation = errors.New("rlwe: allocation failure")
	// ErrUnknownParameter signals a descriptor or NID that does not match
	// any supported parameter set.
	ErrUnknownParameter = errors.New("rlwe: unknown parameter set")
	// ErrInvalidFormat signals a serialized value whose length does not
	// match the expected encoding for its parameter set.
	ErrInvalidFormat = errors.New("rlwe: invalid wire format")
	// ErrParameterMismatch signals an attempt to combine keys or vectors
	// produced under different parameter sets.
	ErrParameterMismatch = errors.New("rlwe: parameter set mismatch")
	// ErrKDFFailure is surfaced from a caller-supplied key-derivation step;
	// the core never derives keys itself but reserves this for callers
	// layering a KDF over the shared reconciliation output.
	ErrKDFFailure = errors.New("rlwe: kdf failure")
)
