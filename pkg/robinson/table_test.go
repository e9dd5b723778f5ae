package robinson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/robinson/pkg/errors"
)

func mustTable(t *testing.T, rows [][]int) *Table {
	t.Helper()
	tb, err := New(rows)
	require.NoError(t, err)
	return tb
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"short row", [][]int{{0, 1}, {0}}},
		{"long row", [][]int{{0, 1, 2}, {0, 0}}},
		{"wide single row", [][]int{{0, 1}}},
		{"ragged", [][]int{{0, 1, 2}, {0, 0, 1}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidShape), "got %v", err)
		})
	}
}

func TestNew_NegativeEntry(t *testing.T) {
	_, err := New([][]int{{0, -1}, {0, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{0, 1}, {0, 0}}
	tb := mustTable(t, rows)
	rows[0][1] = 9
	assert.Equal(t, 1, tb.Lookup(1, 2))
}

func TestNew_Empty(t *testing.T) {
	tb := mustTable(t, nil)
	assert.Equal(t, 0, tb.Size())
	assert.True(t, tb.IsRobinson())
}

func TestLookup_Symmetric(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 1, 2, 4},
		{0, 0, 3, 3},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	assert.Equal(t, 2, tb.Lookup(1, 3))
	assert.Equal(t, 2, tb.Lookup(3, 1))
	assert.Equal(t, 1, tb.Lookup(4, 3))
	assert.Equal(t, 0, tb.Lookup(2, 2))
}

func TestLookup_IgnoresLowerTriangle(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 5},
		{7, 0},
	})
	assert.Equal(t, 5, tb.Lookup(2, 1))
}

func TestIsRobinson(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "positive fixture",
			rows: [][]int{
				{0, 1, 2, 4},
				{0, 0, 2, 3},
				{0, 0, 0, 1},
				{0, 0, 0, 0},
			},
			want: true,
		},
		{
			name: "negative fixture",
			rows: [][]int{
				{0, 1, 2, 4},
				{0, 0, 3, 3},
				{0, 0, 0, 1},
				{0, 0, 0, 0},
			},
			want: false,
		},
		{
			name: "single element",
			rows: [][]int{{0}},
			want: true,
		},
		{
			name: "constant",
			rows: [][]int{
				{0, 3, 3},
				{0, 0, 3},
				{0, 0, 0},
			},
			want: true,
		},
		{
			name: "row decreases",
			rows: [][]int{
				{0, 2, 1},
				{0, 0, 1},
				{0, 0, 0},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustTable(t, tt.rows).IsRobinson())
		})
	}
}

func TestViolation(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 1, 2, 4},
		{0, 0, 3, 3},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	i, j, found := tb.Violation()
	require.True(t, found)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, j)
}

func TestReorder(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 2, 2, 3, 4},
		{0, 0, 1, 1, 3},
		{0, 0, 0, 1, 2},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
	})

	got, err := tb.Reorder([]int{4, 5, 3, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 1, 1, 1, 3},
		{0, 0, 2, 3, 4},
		{0, 0, 0, 1, 2},
		{0, 0, 0, 0, 2},
		{0, 0, 0, 0, 0},
	}, got.Rows())

	// Source is untouched.
	assert.Equal(t, 2, tb.Lookup(1, 2))
}

func TestReorder_MatchesLookup(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 3, 1, 4},
		{0, 0, 5, 9},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
	})
	perm := []int{3, 1, 4, 2}

	got, err := tb.Reorder(perm)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		for j := i; j <= 4; j++ {
			assert.Equal(t, tb.Lookup(perm[i-1], perm[j-1]), got.Lookup(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestReorder_InvalidPermutation(t *testing.T) {
	tb := mustTable(t, [][]int{
		{0, 1, 2},
		{0, 0, 1},
		{0, 0, 0},
	})

	for _, perm := range [][]int{
		{1, 2},
		{1, 2, 2},
		{0, 1, 2},
		{1, 2, 3, 4},
	} {
		_, err := tb.Reorder(perm)
		require.Error(t, err, "perm %v", perm)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidPermutation))
	}
}
