package robinson

import "slices"

// Result is the outcome of a resolution.
type Result struct {
	// Robinson reports whether Permutation reorders the table into a Robinson
	// matrix. It is always verified on the reordered table.
	Robinson bool `json:"robinson"`

	// Permutation is the candidate order found, as 1-based element ids.
	// It is returned even when Robinson is false.
	Permutation []int `json:"permutation"`

	// Dropped lists the elements of blocks that could not be separated into
	// copoints. They are missing from Permutation, which then cannot be a
	// compatible order.
	Dropped []int `json:"dropped,omitempty"`

	// Trace is the decomposition tree, recorded only with WithTrace.
	Trace *Trace `json:"trace,omitempty"`
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrace makes the Resolver record the decomposition tree in Result.Trace.
func WithTrace() Option {
	return func(r *Resolver) { r.trace = true }
}

// Resolver runs the recognition algorithm over one Table.
//
// A Resolver accumulates per-run state and is not safe for concurrent use;
// create one per goroutine. The Table itself may be shared.
type Resolver struct {
	table   *Table
	trace   bool
	dropped []int
}

// NewResolver creates a Resolver for t.
func NewResolver(t *Table, opts ...Option) *Resolver {
	r := &Resolver{table: t}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve decides whether t admits a compatible order and returns the
// candidate permutation. It is shorthand for NewResolver(t).Resolve().
func Resolve(t *Table) Result {
	return NewResolver(t).Resolve()
}

// Resolve runs the recognition on the identity order [1..n], reorders the
// table with the candidate and checks the Robinson property on the result.
// Repeated calls return identical results.
func (r *Resolver) Resolve() Result {
	r.dropped = nil

	var root *Trace
	if r.trace {
		root = &Trace{}
	}

	ids := make([]int, r.table.Size())
	for i := range ids {
		ids[i] = i + 1
	}
	perm := r.findOrder(ids, root)
	if perm == nil {
		perm = []int{}
	}

	res := Result{
		Permutation: perm,
		Dropped:     slices.Clone(r.dropped),
	}
	if root != nil && len(root.Children) > 0 {
		res.Trace = root.Children[0]
	}

	// A candidate with dropped elements is shorter than n and cannot be
	// applied to the table.
	if reordered, err := r.table.Reorder(perm); err == nil {
		res.Robinson = reordered.IsRobinson()
	}
	return res
}

// Verify reports whether perm is a compatible order for t. It returns an
// INVALID_PERMUTATION error when perm is not a permutation of [1..n].
func Verify(t *Table, perm []int) (bool, error) {
	reordered, err := t.Reorder(perm)
	if err != nil {
		return false, err
	}
	return reordered.IsRobinson(), nil
}
