package rlwe

import (
	"encoding/binary"
	"fmt"
)

// bytesPerCoeff returns 2 for q < 2^16, else 4, the wire encoding width
// for a single ring coefficient.
func bytesPerCoeff(q uint64) int {
	if q < 1<<16 {
		return 2
	}
	return 4
}

// MarshalPublicKey encodes pk as the 32-byte parameter descriptor
// followed by N coefficients in big-endian, 2 or 4 bytes each depending
// on the modulus.
func MarshalPublicKey(pk *PublicKey) []byte {
	return marshalRingElement(pk.Params, pk.B)
}

// UnmarshalPublicKey decodes a public key previously produced by
// MarshalPublicKey, looking up its parameter set from the embedded
// descriptor.
func UnmarshalPublicKey(data []byte) (*PublicKey, error) {
	p, b, err := unmarshalRingElement(data)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Params: p, B: b}, nil
}

// MarshalSecretRingElement encodes one half of a secret key (S0 or S1) the
// same way as a public key: descriptor followed by coefficients.
func MarshalSecretRingElement(p *Parameters, coeffs []uint64) []byte {
	return marshalRingElement(p, coeffs)
}

// UnmarshalSecretRingElement is MarshalSecretRingElement's inverse.
func UnmarshalSecretRingElement(data []byte) (*Parameters, []uint64, error) {
	return unmarshalRingElement(data)
}

func marshalRingElement(p *Parameters, coeffs []uint64) []byte {
	width := bytesPerCoeff(p.Q)
	out := make([]byte, 32+width*p.N)
	copy(out[:32], p.Descriptor[:])
	for i, c := range coeffs {
		off := 32 + i*width
		if width == 2 {
			binary.BigEndian.PutUint16(out[off:], uint16(c))
		} else {
			binary.BigEndian.PutUint32(out[off:], uint32(c))
		}
	}
	return out
}

func unmarshalRingElement(data []byte) (*Parameters, []uint64, error) {
	if len(data) < 32 {
		return nil, nil, fmt.Errorf("rlwe: ring element too short (%d bytes): %w", len(data), ErrInvalidFormat)
	}
	p, err := ByDescriptor(data[:32])
	if err != nil {
		return nil, nil, err
	}
	width := bytesPerCoeff(p.Q)
	want := 32 + width*p.N
	if len(data) != want {
		return nil, nil, fmt.Errorf("rlwe: ring element length %d, want %d: %w", len(data), want, ErrInvalidFormat)
	}
	coeffs := make([]uint64, p.N)
	for i := range coeffs {
		off := 32 + i*width
		if width == 2 {
			coeffs[i] = uint64(binary.BigEndian.Uint16(data[off:]))
		} else {
			coeffs[i] = uint64(binary.BigEndian.Uint32(data[off:]))
		}
	}
	return p, coeffs, nil
}

// MarshalReconciliation encodes a Reconciliation message (u and the
// cross-rounding hint cr) as the ring-element wire encoding of u followed
// immediately by the reconciliation-vector wire encoding of cr.
func MarshalReconciliation(r *Reconciliation) []byte {
	uBytes := marshalRingElement(r.Params, r.U)
	crBytes := MarshalReconciliationVector(r.CR)
	return append(uBytes, crBytes...)
}

// UnmarshalReconciliation is MarshalReconciliation's inverse.
func UnmarshalReconciliation(data []byte) (*Reconciliation, error) {
	if len(data) < 32 {
		return nil, fmt.Errorf("rlwe: reconciliation message too short (%d bytes): %w", len(data), ErrInvalidFormat)
	}
	p, err := ByDescriptor(data[:32])
	if err != nil {
		return nil, err
	}
	width := bytesPerCoeff(p.Q)
	uLen := 32 + width*p.N
	if len(data) < uLen {
		return nil, fmt.Errorf("rlwe: reconciliation message too short (%d bytes): %w", len(data), ErrInvalidFormat)
	}
	_, u, err := unmarshalRingElement(data[:uLen])
	if err != nil {
		return nil, err
	}
	cr, err := UnmarshalReconciliationVector(data[uLen:])
	if err != nil {
		return nil, err
	}
	if len(cr) != p.MuWords {
		return nil, fmt.Errorf("rlwe: reconciliation vector has %d words, want %d: %w", len(cr), p.MuWords, ErrInvalidFormat)
	}
	return &Reconciliation{Params: p, U: u, CR: cr}, nil
}

// MarshalReconciliationVector encodes a reconciliation bit vector as a
// 4-byte big-endian muwords count, then that many 8-byte little-endian
// words.
func MarshalReconciliationVector(words []uint64) []byte {
	out := make([]byte, 4+8*len(words))
	binary.BigEndian.PutUint32(out[:4], uint32(len(words)))
	for i, w := range words {
		binary.LittleEndian.PutUint64(out[4+i*8:], w)
	}
	return out
}

// UnmarshalReconciliationVector is MarshalReconciliationVector's inverse.
// It rejects any input whose length is not exactly 4 + 8*muwords.
func UnmarshalReconciliationVector(data []byte) ([]uint64, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("rlwe: reconciliation vector too short (%d bytes): %w", len(data), ErrInvalidFormat)
	}
	muWords := binary.BigEndian.Uint32(data[:4])
	want := 4 + 8*int(muWords)
	if len(data) != want {
		return nil, fmt.Errorf("rlwe: reconciliation vector length %d, want %d: %w", len(data), want, ErrInvalidFormat)
	}
	words := make([]uint64, muWords)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[4+i*8:])
	}
	return words, nil
}
