// Package synth builds matrices that are Robinson by construction, for demos,
// benchmarks and round-trip tests of the recognizer.
//
// Every generator takes an explicit seed; the same seed always produces the
// same matrix.
package synth

import (
	"math/rand/v2"

	"github.com/matzehuels/robinson/pkg/robinson"
)

// DefaultProbability is the per-entry increase probability used by the demo.
const DefaultProbability = 0.005

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Generate returns an n×n table that is Robinson under the identity order.
//
// Entries are filled diagonal by diagonal moving away from the main one: each
// entry starts at max(T[i+1][j], T[i][j-1], 1) and is increased by one with
// probability p. Small p gives large plateaus of equal values, large p gives
// mostly distinct values.
func Generate(n int, p float64, seed uint64) *robinson.Table {
	rng := newRand(seed)
	p = max(0, min(p, 1))

	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for offset := 1; offset < n; offset++ {
		for i := 0; i+offset < n; i++ {
			j := i + offset
			v := max(m[i+1][j], m[i][j-1], 1)
			if rng.Float64() < p {
				v++
			}
			m[i][j] = v
		}
	}

	t, err := robinson.New(m)
	if err != nil {
		panic("synth: generated matrix rejected: " + err.Error())
	}
	return t
}

// LineMetric returns the distance table of n points placed at strictly
// increasing random positions on a line, in position order. The table is
// Robinson under the identity and has few ties.
func LineMetric(n int, seed uint64) *robinson.Table {
	rng := newRand(seed)
	pos := make([]int, n)
	for i := 1; i < n; i++ {
		pos[i] = pos[i-1] + 1 + rng.IntN(9)
	}

	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := i + 1; j < n; j++ {
			m[i][j] = pos[j] - pos[i]
		}
	}

	t, err := robinson.New(m)
	if err != nil {
		panic("synth: line metric rejected: " + err.Error())
	}
	return t
}

// Permutation returns a uniformly random permutation of [1..n].
func Permutation(n int, seed uint64) []int {
	perm := newRand(seed).Perm(n)
	for i := range perm {
		perm[i]++
	}
	return perm
}

// Shuffle relabels the elements of t with a random permutation and returns
// the shuffled table along with the permutation used: shuffled.Lookup(i, j)
// equals t.Lookup(perm[i-1], perm[j-1]).
func Shuffle(t *robinson.Table, seed uint64) (*robinson.Table, []int) {
	perm := Permutation(t.Size(), seed)
	shuffled, err := t.Reorder(perm)
	if err != nil {
		panic("synth: shuffle produced an invalid permutation: " + err.Error())
	}
	return shuffled, perm
}
