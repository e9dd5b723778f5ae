package robinson

import (
	"maps"
	"slices"
)

// refine groups elements by their distance to pivot. Groups are ordered by
// increasing distance; inside a group, elements appear in reverse input order
// (each newcomer with an already seen distance goes to the front).
//
// The recursive refiner depends on this exact tie-break.
func (t *Table) refine(pivot int, elements []int) [][]int {
	byDist := make(map[int][]int)
	for _, x := range elements {
		d := t.Lookup(pivot, x)
		byDist[d] = append(byDist[d], x)
	}

	groups := make([][]int, 0, len(byDist))
	for _, d := range slices.Sorted(maps.Keys(byDist)) {
		g := byDist[d]
		slices.Reverse(g)
		groups = append(groups, g)
	}
	return groups
}

// recursiveRefine splits elements into the laminar sequence of blocks that
// must stay contiguous in any order compatible with pivot p.
//
// in and out hold elements already known to lie before, respectively after,
// the current block relative to p. With both empty the block is final.
// Otherwise the first constraint q (from in, else from out) refines the
// block; when q lies after the block, the groups closer to q than p is are
// reversed so that they run towards q.
func (t *Table) recursiveRefine(p int, in, elements, out []int) [][]int {
	if len(in) == 0 && len(out) == 0 {
		return [][]int{elements}
	}

	var q int
	if len(in) > 0 {
		q = in[0]
	} else {
		q = out[0]
	}

	groups := t.refine(q, elements)

	if slices.Contains(out, q) {
		dpq := t.Lookup(p, q)
		alpha := len(groups)
		for j, g := range groups {
			if t.Lookup(g[0], q) > dpq {
				alpha = j
				break
			}
		}
		slices.Reverse(groups[:alpha])
	}

	inRest := without(in, q)
	outRest := without(out, q)

	var blocks [][]int
	for i, g := range groups {
		ini := append(slices.Concat(groups[:i]...), inRest...)
		outi := append(slices.Concat(groups[i+1:]...), outRest...)
		blocks = append(blocks, t.recursiveRefine(p, ini, g, outi)...)
	}
	return blocks
}

// without returns a copy of xs with every occurrence of v removed.
func without(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
