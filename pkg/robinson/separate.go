package robinson

// copoint is a maximal separable run of elements anchored at one of its
// extreme elements.
type copoint struct {
	anchor  int
	members []int
}

// separate tries to represent the ordered block xs as at most two copoints
// relative to pivot p.
//
// With b = d(x_min, x_max) and l = d(p, x_min): if b <= l the whole block is a
// single copoint anchored at x_min. Otherwise the block is cut at the first
// adjacent pair (y, z) with d(x_min, y) <= l, d(z, x_max) <= l and
// d(y, z) >= l, giving a prefix anchored at x_min and a suffix anchored at
// x_max. ok is false when no such cut exists.
func (t *Table) separate(p int, xs []int) (cps []copoint, ok bool) {
	if len(xs) == 0 {
		return nil, true
	}

	xMin, xMax := xs[0], xs[len(xs)-1]
	b := t.Lookup(xMin, xMax)
	l := t.Lookup(p, xMin)

	if b <= l {
		return []copoint{{anchor: xMin, members: xs}}, true
	}

	for k := 0; k+1 < len(xs); k++ {
		y, z := xs[k], xs[k+1]
		if t.Lookup(xMin, y) <= l && t.Lookup(z, xMax) <= l && t.Lookup(y, z) >= l {
			return []copoint{
				{anchor: xMin, members: xs[:k+1]},
				{anchor: xMax, members: xs[k+1:]},
			}, true
		}
	}
	return nil, false
}
