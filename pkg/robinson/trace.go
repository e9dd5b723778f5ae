package robinson

import "slices"

// Trace is one level of the decomposition: the pivot chosen for a set of
// elements, the contiguous blocks found around it and the copoints each
// block collapsed into. Children holds the levels of the blocks themselves,
// in block order.
type Trace struct {
	Pivot       int       `json:"pivot"`
	Blocks      [][]int   `json:"blocks,omitempty"`
	Copoints    []Copoint `json:"copoints,omitempty"`
	Unseparable [][]int   `json:"unseparable,omitempty"`
	Children    []*Trace  `json:"children,omitempty"`
}

// Copoint is an anchor element with the ordered members it stands for.
type Copoint struct {
	Anchor  int   `json:"anchor"`
	Members []int `json:"members"`
}

func (tr *Trace) child(pivot int, blocks [][]int) *Trace {
	c := &Trace{Pivot: pivot, Blocks: make([][]int, len(blocks))}
	for i, b := range blocks {
		c.Blocks[i] = slices.Clone(b)
	}
	tr.Children = append(tr.Children, c)
	return c
}

// finish records the level's copoints. Blocks are ordered back to front, so
// children and unseparable blocks arrive reversed.
func (tr *Trace) finish(cps []copoint) {
	slices.Reverse(tr.Children)
	slices.Reverse(tr.Unseparable)
	tr.Copoints = make([]Copoint, len(cps))
	for i, cp := range cps {
		tr.Copoints[i] = Copoint{Anchor: cp.anchor, Members: slices.Clone(cp.members)}
	}
}

// Depth returns the number of levels on the longest pivot chain.
func (tr *Trace) Depth() int {
	if tr == nil {
		return 0
	}
	d := 0
	for _, c := range tr.Children {
		d = max(d, c.Depth())
	}
	return d + 1
}

// Levels returns the total number of levels in the tree.
func (tr *Trace) Levels() int {
	if tr == nil {
		return 0
	}
	n := 1
	for _, c := range tr.Children {
		n += c.Levels()
	}
	return n
}
