package robinson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparate_Empty(t *testing.T) {
	tb := mustTable(t, [][]int{{0}})

	cps, ok := tb.separate(1, nil)
	assert.True(t, ok)
	assert.Empty(t, cps)
}

func TestSeparate_SingleCopoint(t *testing.T) {
	// d(x_min, x_max) = 1 <= d(p, x_min) = 2.
	tb := mustTable(t, [][]int{
		{0, 2, 2},
		{0, 0, 1},
		{0, 0, 0},
	})

	cps, ok := tb.separate(1, []int{2, 3})
	require.True(t, ok)
	assert.Equal(t, []copoint{{anchor: 2, members: []int{2, 3}}}, cps)
}

func TestSeparate_Split(t *testing.T) {
	// 1=b 2=d 3=a 4=c with a b c d unit-spaced except d(a,d) = 2.
	tb := mustTable(t, [][]int{
		{0, 1, 1, 1},
		{0, 0, 2, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	cps, ok := tb.separate(1, []int{2, 4, 3})
	require.True(t, ok)
	assert.Equal(t, []copoint{
		{anchor: 2, members: []int{2}},
		{anchor: 3, members: []int{4, 3}},
	}, cps)
}

func TestSeparate_NotSeparable(t *testing.T) {
	// l = d(1,2) = 1, every adjacent gap is 2 and the block spans 3.
	tb := mustTable(t, [][]int{
		{0, 1, 0, 0},
		{0, 0, 2, 3},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
	})

	cps, ok := tb.separate(1, []int{2, 3, 4})
	assert.False(t, ok)
	assert.Nil(t, cps)
}
