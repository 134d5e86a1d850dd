package ring

// IsPrime reports whether q is prime, by trial division. Every modulus this
// package deals with (the nine ring primes and the two auxiliary Bluestein
// primes) is well under 2^26, so trial division up to sqrt(q) is fast and
// avoids pulling in a probabilistic primality test for no reason.
func IsPrime(q uint64) bool {
	if q < 2 {
		return false
	}
	if q%2 == 0 {
		return q == 2
	}
	for d := uint64(3); d*d <= q; d += 2 {
		if q%d == 0 {
			return false
		}
	}
	return true
}

// Factorize returns the distinct prime factors of n, by trial division.
func Factorize(n uint64) []uint64 {
	var factors []uint64
	for _, p := range []uint64{2, 3, 5} {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	for d := uint64(7); d*d <= n; d += 2 {
		if n%d == 0 {
			factors = append(factors, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// PrimitiveRoot returns the smallest primitive root of the multiplicative
// group Z_q^*, for prime q. Grounded on Pro7ech-lattigo/ring/rns_ring.go's
// PrimitiveRoot: find the factors of q-1, then test increasing candidates
// g until none of them satisfy g^((q-1)/factor) = 1 mod q.
func PrimitiveRoot(q uint64) uint64 {
	factors := Factorize(q - 1)
	for g := uint64(2); ; g++ {
		isRoot := true
		for _, f := range factors {
			if ModExp(g, (q-1)/f, q) == 1 {
				isRoot = false
				break
			}
		}
		if isRoot {
			return g
		}
	}
}

// NthRoot returns a primitive n-th root of unity mod q, for prime q with
// n | (q-1). It is derived from a primitive root g of Z_q^* as
// g^((q-1)/n) mod q.
func NthRoot(n, q uint64) uint64 {
	if (q-1)%n != 0 {
		panic("ring: n does not divide q-1, no primitive n-th root of unity exists mod q")
	}
	g := PrimitiveRoot(q)
	return ModExp(g, (q-1)/n, q)
}

// BitReverse64 reverses the lowest logN bits of x.
func BitReverse64(x uint64, logN uint64) uint64 {
	var r uint64
	for i := uint64(0); i < logN; i++ {
		r |= ((x >> i) & 1) << (logN - 1 - i)
	}
	return r
}

// Log2 returns floor(log2(x)) for x > 0.
func Log2(x uint64) uint64 {
	var l uint64
	for x > 1 {
		x >>= 1
		l++
	}
	return l
}

// IsPowerOfTwo reports whether x is a power of two.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= x.
func NextPowerOfTwo(x uint64) uint64 {
	if x == 0 {
		return 1
	}
	p := uint64(1)
	for p < x {
		p <<= 1
	}
	return p
}
