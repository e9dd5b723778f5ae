package robinson

import (
	"slices"

	"github.com/matzehuels/robinson/pkg/errors"
)

// Table is an immutable square dissimilarity matrix over elements 1..n.
//
// Only the upper triangle is ever read, so a Table is logically symmetric.
// Diagonal entries are conventionally 0. A Table is safe for concurrent use
// by multiple goroutines since no method mutates it.
type Table struct {
	n    int
	rows [][]int
}

// New builds a Table from a square matrix of non-negative integers.
//
// New returns an INVALID_SHAPE error when any row length differs from the
// number of rows, and an INVALID_INPUT error when an entry is negative. The
// input is copied; later changes to rows do not affect the Table.
func New(rows [][]int) (*Table, error) {
	n := len(rows)
	cp := make([][]int, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidShape,
				"row %d has %d entries, want %d", i+1, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"entry (%d,%d) is negative: %d", i+1, j+1, v)
			}
		}
		cp[i] = slices.Clone(row)
	}
	return &Table{n: n, rows: cp}, nil
}

// zeroTable returns an n×n table filled with zeros.
func zeroTable(n int) *Table {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	return &Table{n: n, rows: rows}
}

// Size returns the number of elements n.
func (t *Table) Size() int {
	return t.n
}

// Rows returns a deep copy of the underlying matrix, lower triangle included.
func (t *Table) Rows() [][]int {
	out := make([][]int, t.n)
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Lookup returns the distance between elements a and b (1-based).
// It always reads the entry at (min(a,b), max(a,b)).
func (t *Table) Lookup(a, b int) int {
	if a <= b {
		return t.rows[a-1][b-1]
	}
	return t.rows[b-1][a-1]
}

// Reorder returns a new Table T' with T'.Lookup(i, j) == t.Lookup(perm[i-1], perm[j-1])
// for all i <= j. The lower triangle of T' is left at zero.
//
// perm must list every id in [1, n] exactly once; otherwise Reorder returns an
// INVALID_PERMUTATION error. t is never modified.
func (t *Table) Reorder(perm []int) (*Table, error) {
	if err := errors.ValidatePermutation(perm, t.n); err != nil {
		return nil, err
	}
	out := zeroTable(t.n)
	for i := 0; i < t.n; i++ {
		for j := i; j < t.n; j++ {
			out.rows[i][j] = t.Lookup(perm[i], perm[j])
		}
	}
	return out, nil
}

// IsRobinson reports whether the table satisfies the Robinson property in its
// current index order: for all 1 <= i < j <= n,
// Lookup(i, j) >= max(Lookup(i+1, j), Lookup(i, j-1)).
func (t *Table) IsRobinson() bool {
	_, _, found := t.Violation()
	return !found
}

// Violation returns the first pair (i, j), scanning rows top-down and columns
// left to right, where the Robinson property fails. found is false when the
// table is Robinson.
//
// Neighbors of adjacent pairs degenerate to diagonal lookups and are compared
// as-is.
func (t *Table) Violation() (i, j int, found bool) {
	for i = 1; i < t.n; i++ {
		for j = i + 1; j <= t.n; j++ {
			if t.Lookup(i, j) < max(t.Lookup(i+1, j), t.Lookup(i, j-1)) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
