package rlwe

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// descriptorMagic is the fixed 4-byte tag at the front of every wire
// descriptor.
var descriptorMagic = [4]byte{'R', 'L', 'W', 'E'}

// computeDescriptor builds the 32-byte wire descriptor for a parameter
// set: magic, n, q, and a 20-byte hash of the raw coefficient image of a.
// The original source fingerprints `a` with SHA-1; any 160-bit
// collision-resistant hash works just as well, so this uses blake3
// truncated to 20 bytes, matching how luxfi-ringtail/primitives/hash.go
// reaches for
// zeebo/blake3 rather than a standard-library hash for this kind of
// content fingerprint.
func computeDescriptor(n int, q uint64, a []uint64) [32]byte {
	var desc [32]byte
	copy(desc[0:4], descriptorMagic[:])
	binary.BigEndian.PutUint32(desc[4:8], uint32(n))
	binary.BigEndian.PutUint32(desc[8:12], uint32(q))

	raw := make([]byte, 8*len(a))
	for i, c := range a {
		binary.LittleEndian.PutUint64(raw[i*8:], c)
	}
	h := blake3.New()
	h.Write(raw)
	sum := h.Sum(nil)
	copy(desc[12:32], sum[:20])
	return desc
}

// aSeed derives the deterministic ChaCha20 key used to expand a parameter
// set's public polynomial `a`, domain-separated on (n, q) so that no two
// supported parameter sets ever share a keystream.
func aSeed(n int, q uint64) [32]byte {
	h := blake3.New()
	h.Write([]byte("rlwe-public-a-v1"))
	var nb, qb [8]byte
	binary.BigEndian.PutUint64(nb[:], uint64(n))
	binary.BigEndian.PutUint64(qb[:], q)
	h.Write(nb[:])
	h.Write(qb[:])
	var seed [32]byte
	copy(seed[:], h.Sum(nil))
	return seed
}
