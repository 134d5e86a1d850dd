package rlwe

import "github.com/vscrypto/openssl-ringlwe/ring"

// RoundAndCrossRound computes, for
// each coefficient of v (the n, or n-1 when N is odd, meaningful
// coefficients), apply the randomized quarter-boundary nudge and derive
// one rounding bit mu and one cross-rounding bit cr. Ported from the
// structure of ringlwe_kex.c's function of the same name; v is consumed
// in place (the nudge mutates it) since the caller discards v immediately
// after.
func (p *Parameters) RoundAndCrossRound(v []uint64, src ring.Source) (mu, cr []uint64) {
	n := len(v)
	mu = make([]uint64, p.MuWords)
	cr = make([]uint64, p.MuWords)

	limit := n
	if p.IsPrimeDimension() {
		limit = n - 1
	}

	for i := 0; i < limit; i++ {
		p.nudge(v, i, src)
		word, bit := i/64, uint(i%64)
		if v[i] > p.Q14 && v[i] < p.Q34 {
			mu[word] |= 1 << bit
		}
		if (v[i] > p.Q14 && v[i] <= p.Q24) || v[i] >= p.Q34 {
			cr[word] |= 1 << bit
		}
	}
	return mu, cr
}

// nudge applies the randomized tie-break at the quarter boundaries: it
// moves the coefficient to the adjacent quarter-point with probability
// exactly 1/2, drawing one 64-bit word from src and using its low bit when
// a nudge site is hit.
func (p *Parameters) nudge(v []uint64, i int, src ring.Source) {
	q := p.Q
	if p.QMod4 == 1 {
		if v[i] == 0 {
			if src.Random64()&1 == 1 {
				v[i] = q - 1
			}
		} else if v[i] == p.Q14-1 {
			if src.Random64()&1 == 1 {
				v[i] = p.Q14
			}
		}
	} else {
		if v[i] == 0 {
			if src.Random64()&1 == 1 {
				v[i] = q - 1
			}
		} else if v[i] == p.Q34-1 {
			if src.Random64()&1 == 1 {
				v[i] = p.Q34
			}
		}
	}
}

// Rec recovers the mu bit string from a
// noisy estimate w of v and the cross-rounding hint cr, using the open-
// interval acceptance windows derived from the mu/cr quadrant structure
// (Parameters.R0L/R0U/R1L/R1U; see DESIGN.md).
func (p *Parameters) Rec(w, cr []uint64) []uint64 {
	n := p.N
	limit := n
	if p.IsPrimeDimension() {
		limit = n - 1
	}
	r := make([]uint64, p.MuWords)
	for i := 0; i < limit; i++ {
		word, bit := i/64, uint(i%64)
		b := (cr[word] >> bit) & 1
		wi := w[i]
		var accept bool
		if b == 1 {
			accept = wi > p.R1L && wi < p.R1U
		} else {
			accept = wi > p.R0L && wi < p.R0U
		}
		if accept {
			r[word] |= 1 << bit
		}
	}
	return r
}
