package robinson

import (
	"slices"

	"github.com/matzehuels/robinson/pkg/errors"
)

// MaxExhaustive is the largest table size Exhaustive accepts. 10! is about
// 3.6 million candidate orders.
const MaxExhaustive = 10

// Exhaustive searches every permutation of [1..n] for a compatible order,
// using Heap's algorithm. It returns the first compatible order found.
//
// Exhaustive is a reference oracle for small inputs; it returns an
// UNSUPPORTED error when n exceeds MaxExhaustive.
func Exhaustive(t *Table) (perm []int, ok bool, err error) {
	n := t.Size()
	if n > MaxExhaustive {
		return nil, false, errors.New(errors.ErrCodeUnsupported,
			"exhaustive search limited to %d elements, got %d", MaxExhaustive, n)
	}

	cur := make([]int, n)
	for i := range cur {
		cur[i] = i + 1
	}
	if isRobinsonUnder(t, cur) {
		return slices.Clone(cur), true, nil
	}

	state := make([]int, n)
	for i := 0; i < n; {
		if state[i] < i {
			if i&1 == 0 {
				cur[0], cur[i] = cur[i], cur[0]
			} else {
				cur[state[i]], cur[i] = cur[i], cur[state[i]]
			}
			if isRobinsonUnder(t, cur) {
				return slices.Clone(cur), true, nil
			}
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return nil, false, nil
}

// isRobinsonUnder checks the Robinson property of t viewed through perm
// without materializing the reordered table.
func isRobinsonUnder(t *Table, perm []int) bool {
	d := func(i, j int) int { return t.Lookup(perm[i-1], perm[j-1]) }
	for i := 1; i < len(perm); i++ {
		for j := i + 1; j <= len(perm); j++ {
			if d(i, j) < max(d(i+1, j), d(i, j-1)) {
				return false
			}
		}
	}
	return true
}
