package robinson_test

import (
	"fmt"

	"github.com/matzehuels/robinson/pkg/robinson"
)

func ExampleResolve() {
	t, err := robinson.New([][]int{
		{0, 2, 1},
		{0, 0, 1},
		{0, 0, 0},
	})
	if err != nil {
		panic(err)
	}

	res := robinson.Resolve(t)
	fmt.Println(res.Robinson, res.Permutation)
	// Output:
	// true [1 3 2]
}

func ExampleTable_IsRobinson() {
	good, _ := robinson.New([][]int{
		{0, 1, 2, 4},
		{0, 0, 2, 3},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	bad, _ := robinson.New([][]int{
		{0, 1, 2, 4},
		{0, 0, 3, 3},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})
	fmt.Println(good.IsRobinson(), bad.IsRobinson())
	// Output:
	// true false
}

func ExampleTable_Reorder() {
	t, _ := robinson.New([][]int{
		{0, 1, 1},
		{0, 0, 2},
		{0, 0, 0},
	})

	reordered, _ := t.Reorder([]int{3, 1, 2})
	fmt.Println(t.IsRobinson(), reordered.IsRobinson())
	// Output:
	// false true
}
