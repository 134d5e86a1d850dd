package rlwe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vscrypto/openssl-ringlwe/ring"
)

func TestRoundAndCrossRoundQuadrants(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)
	src := ring.NewDeterministicSource([]byte("quadrant-seed"))

	v := make([]uint64, p.N)
	// one representative value from each of the four quadrants, away from
	// any nudge boundary.
	v[0] = p.Q14 / 2
	v[1] = p.Q14 + (p.Q24-p.Q14)/2
	v[2] = p.Q24 + (p.Q34-p.Q24)/2
	v[3] = p.Q34 + (p.Q-p.Q34)/2

	mu, cr := p.RoundAndCrossRound(v, src)

	bit := func(words []uint64, i int) uint64 { return (words[i/64] >> uint(i%64)) & 1 }

	require.Equal(t, uint64(0), bit(mu, 0))
	require.Equal(t, uint64(0), bit(cr, 0))

	require.Equal(t, uint64(1), bit(mu, 1))
	require.Equal(t, uint64(1), bit(cr, 1))

	require.Equal(t, uint64(1), bit(mu, 2))
	require.Equal(t, uint64(0), bit(cr, 2))

	require.Equal(t, uint64(0), bit(mu, 3))
	require.Equal(t, uint64(1), bit(cr, 3))
}

func TestRecRecoversRoundedBitsFromExactValue(t *testing.T) {
	p, err := ByNID("256_15361")
	require.NoError(t, err)
	src := ring.NewDeterministicSource([]byte("rec-exact-seed"))

	// Spread values across the four quadrants, each well clear of a
	// quadrant boundary (and of the randomized-nudge sites 0 and
	// Q14-1/Q34-1) so the strict-open rec intervals agree with mu exactly
	// (see DESIGN.md's rec-boundary Open Question).
	quarter := p.Q / 8
	v := make([]uint64, p.N)
	for i := range v {
		switch i % 4 {
		case 0:
			v[i] = quarter
		case 1:
			v[i] = p.Q14 + quarter
		case 2:
			v[i] = p.Q24 + quarter
		case 3:
			v[i] = p.Q34 + quarter
		}
	}

	mu, cr := p.RoundAndCrossRound(v, src)
	got := p.Rec(v, cr)

	require.Equal(t, mu, got)
}
