package robinson

// side records where the bipartition sort placed an element.
type side uint8

const (
	undecided side = iota
	left
	right
)

// sortByBipartition totally orders anchors around pivot p and returns the
// sequence with p inserted between the left and right parts.
//
// Anchors are taken as references from the end of the input backwards. A
// reference q that is still undecided goes to the right. Every undecided x is
// then compared with q: x goes to the left when it is closer to q than p is
// and q is on the left, or when it is farther from q than p is and q is on the
// right. Any other x goes to the right. Elements tied with q
// (d(x,q) == d(p,q)) are buffered and land on the side opposite to the next
// element decided in the same pass; ties still buffered at the end of a pass
// wait for the next reference.
func (t *Table) sortByBipartition(p int, anchors []int) []int {
	// Both parts are grown at their far end: leftRev holds the left part
	// outer-most last, which is already the final reading order, and rightRev
	// holds the right part nearest-to-p last.
	var leftRev, rightRev []int
	placed := make(map[int]side, len(anchors))

	order := make([]int, len(anchors))
	for i, a := range anchors {
		order[len(anchors)-1-i] = a
	}
	pending := append([]int(nil), order...)

	for _, q := range order {
		if placed[q] == undecided {
			rightRev = append(rightRev, q)
			placed[q] = right
			pending = without(pending, q)
		}

		qLeft := placed[q] == left
		qRight := placed[q] == right
		dpq := t.Lookup(p, q)

		var ties []int
		for _, x := range pending {
			dxq := t.Lookup(x, q)
			if dxq == dpq {
				ties = append(ties, x)
				continue
			}
			if (dxq < dpq && qLeft) || (dxq > dpq && qRight) {
				leftRev = append(leftRev, x)
				placed[x] = left
				rightRev = append(rightRev, ties...)
				markAll(placed, ties, right)
			} else {
				rightRev = append(rightRev, x)
				placed[x] = right
				leftRev = append(leftRev, ties...)
				markAll(placed, ties, left)
			}
			ties = nil
		}
		pending = ties
	}

	out := make([]int, 0, len(leftRev)+1+len(rightRev))
	out = append(out, leftRev...)
	out = append(out, p)
	for i := len(rightRev) - 1; i >= 0; i-- {
		out = append(out, rightRev[i])
	}
	return out
}

func markAll(placed map[int]side, xs []int, s side) {
	for _, x := range xs {
		placed[x] = s
	}
}
