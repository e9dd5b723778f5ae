package robinson

// findOrder builds a candidate compatible order of elements.
//
// The first element is the pivot p. The remaining elements are refined into
// blocks around p, each block is ordered recursively and separated into
// copoints, the copoint anchors are sorted by bipartition around p, and the
// members of each copoint are laid out in that order with p at its own slot.
//
// A block that cannot be separated contributes nothing to the result; its
// elements are reported through r.dropped.
func (r *Resolver) findOrder(elements []int, parent *Trace) []int {
	if len(elements) == 0 {
		return nil
	}

	t := r.table
	p := elements[0]
	blocks := t.recursiveRefine(p, []int{p}, elements[1:], nil)

	var level *Trace
	if parent != nil {
		level = parent.child(p, blocks)
	}

	var copoints []copoint
	for i := len(blocks) - 1; i >= 0; i-- {
		sub := r.findOrder(blocks[i], level)
		cps, ok := t.separate(p, sub)
		if !ok {
			r.dropped = append(r.dropped, sub...)
			if level != nil {
				level.Unseparable = append(level.Unseparable, sub)
			}
			continue
		}
		copoints = append(cps, copoints...)
	}

	anchors := make([]int, len(copoints))
	members := make(map[int][]int, len(copoints))
	for i, cp := range copoints {
		anchors[i] = cp.anchor
		members[cp.anchor] = cp.members
	}
	if level != nil {
		level.finish(copoints)
	}

	var order []int
	for _, a := range t.sortByBipartition(p, anchors) {
		if a == p {
			order = append(order, p)
			continue
		}
		order = append(order, members[a]...)
	}
	return order
}
