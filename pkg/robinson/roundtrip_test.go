package robinson_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/robinson/pkg/robinson"
	"github.com/matzehuels/robinson/pkg/robinson/synth"
)

func TestRoundTrip_Generated(t *testing.T) {
	sizes := []int{1, 2, 3, 5, 8, 20, 60}
	for _, n := range sizes {
		for seed := uint64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				base := synth.Generate(n, synth.DefaultProbability, seed)
				require.True(t, base.IsRobinson())

				shuffled, _ := synth.Shuffle(base, seed*7919)
				res := robinson.Resolve(shuffled)

				assert.True(t, res.Robinson, "permutation %v", res.Permutation)
				assert.Empty(t, res.Dropped)

				ok, err := robinson.Verify(shuffled, res.Permutation)
				require.NoError(t, err)
				assert.True(t, ok)
			})
		}
	}
}

func TestRoundTrip_LineMetric(t *testing.T) {
	for _, n := range []int{4, 7, 12, 25} {
		for seed := uint64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				shuffled, _ := synth.Shuffle(synth.LineMetric(n, seed), seed+100)
				res := robinson.Resolve(shuffled)

				assert.True(t, res.Robinson, "permutation %v", res.Permutation)
				assert.Len(t, res.Permutation, n)
			})
		}
	}
}

func TestResolve_SoundAgainstExhaustive(t *testing.T) {
	// Whatever Resolve claims must hold, and when no compatible order exists
	// Resolve must not claim one.
	for seed := uint64(1); seed <= 30; seed++ {
		n := 3 + int(seed%4)
		tb := randomTable(t, n, seed)

		res := robinson.Resolve(tb)
		_, exists, err := robinson.Exhaustive(tb)
		require.NoError(t, err)

		if res.Robinson {
			assert.True(t, exists, "seed %d", seed)
		}
		if !exists {
			assert.False(t, res.Robinson, "seed %d", seed)
		}
	}
}

func randomTable(t *testing.T, n int, seed uint64) *robinson.Table {
	t.Helper()
	perm := synth.Permutation(n*n, seed)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := i + 1; j < n; j++ {
			rows[i][j] = perm[i*n+j] % 4
		}
	}
	tb, err := robinson.New(rows)
	require.NoError(t, err)
	return tb
}
