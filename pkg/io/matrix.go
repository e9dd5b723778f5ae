package io

import (
	"strconv"

	"github.com/matzehuels/robinson/pkg/errors"
	"github.com/matzehuels/robinson/pkg/robinson"
)

// Matrix is a dissimilarity table together with the names of its elements.
// Labels[i] names element i+1.
type Matrix struct {
	Labels []string
	Table  *robinson.Table
}

// NewMatrix builds a Matrix from raw rows. When labels is empty the elements
// are named "1".."n"; otherwise it must have one entry per row.
func NewMatrix(labels []string, rows [][]int) (*Matrix, error) {
	t, err := robinson.New(rows)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		labels = DefaultLabels(t.Size())
	}
	if len(labels) != t.Size() {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d labels for a %d×%d matrix", len(labels), t.Size(), t.Size())
	}
	return &Matrix{Labels: labels, Table: t}, nil
}

// DefaultLabels returns "1".."n".
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

// Label returns the label of element id (1-based).
func (m *Matrix) Label(id int) string {
	if id < 1 || id > len(m.Labels) {
		return strconv.Itoa(id)
	}
	return m.Labels[id-1]
}

// Permuted returns the labels of perm's elements in order.
func (m *Matrix) Permuted(perm []int) []string {
	out := make([]string, len(perm))
	for i, id := range perm {
		out[i] = m.Label(id)
	}
	return out
}
