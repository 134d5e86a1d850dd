package ring

// Zero overwrites every element of s with 0 in a way the compiler cannot
// optimize away, the closest Go equivalent of OPENSSL_cleanse's volatile
// writes (Go has no volatile qualifier). Used to scrub ephemeral secrets
// — sampled noise, shared secrets, private keys — before they go out of
// scope.
func Zero(s []uint64) {
	for i := range s {
		s[i] = 0
	}
	noinlineSink(s)
}

// noinlineSink exists only to keep the compiler from proving the writes
// in Zero are dead and eliding them.
//
//go:noinline
func noinlineSink(s []uint64) {
	if len(s) > 0 && s[0] == ^uint64(0) {
		panic("unreachable")
	}
}

// ZeroBytes is Zero's counterpart for raw byte buffers (seeds, encoded
// keys, descriptor material).
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	noinlineSinkBytes(b)
}

//go:noinline
func noinlineSinkBytes(b []byte) {
	if len(b) > 0 && b[0] == 0xff && len(b) > 1 && b[1] == 0xff {
		panic("unreachable")
	}
}
