package ring

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// Source is the randomness-oracle contract a RANDOM64 primitive needs: a
// stream of independent uniform 64-bit words, consumed in contiguous
// draws so that rejection-sampling timing never depends on anything but
// the number of draws performed. Grounded on the embeddable
// *sampling.Source pattern used throughout Pro7ech-lattigo/ring's samplers
// (e.g. rns_sampler_uniform.go, rns_sampler_ternary.go).
type Source interface {
	// Random64 returns the next independent uniform random 64-bit word.
	Random64() uint64
}

// StreamSource adapts any io.Reader producing uniform random bytes into a
// Source, by reading 8 bytes per call to Random64.
type StreamSource struct {
	r io.Reader
}

// NewStreamSource wraps r as a Source.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: r}
}

// Random64 implements Source.
func (s *StreamSource) Random64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// NewDefaultSource returns a cryptographically secure Source keyed from
// crypto/rand, implemented with ChaCha20 the way the rest of the example
// pack (tuneinsight-lattigo, luxfi-ringtail) draws its stream-cipher
// primitives from golang.org/x/crypto rather than the standard library's
// minimal crypto/rand.Reader alone.
func NewDefaultSource() *StreamSource {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(err)
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		panic(err)
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return NewStreamSource(&cipherReader{cipher: cipher})
}

// cipherReader turns a keystream cipher into an io.Reader of pure keystream
// by encrypting an all-zero buffer.
type cipherReader struct {
	cipher *chacha20.Cipher
}

func (c *cipherReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	c.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// NewDeterministicSource returns a Source whose output is a deterministic
// function of seed, for reproducible fixed-seed tests. seed is used as the
// ChaCha20 key, padded/truncated to 32 bytes.
func NewDeterministicSource(seed []byte) *StreamSource {
	var key [chacha20.KeySize]byte
	copy(key[:], seed)
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return NewStreamSource(&cipherReader{cipher: cipher})
}
