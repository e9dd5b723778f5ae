// Package robinson recognizes Robinson dissimilarities and computes compatible
// orders for them.
//
// # Overview
//
// A dissimilarity matrix is Robinson when its entries never decrease as one
// moves away from the diagonal along any row or column. Given an arbitrary
// square matrix of non-negative dissimilarities, [Resolve] decides whether
// some reordering of its elements makes it Robinson and returns such an
// ordering (a compatible order) when one exists.
//
// The recognition runs in O(n²) using the module decomposition of Carmona,
// Chepoi, Naves and Préa ("Modules in Robinson spaces"):
//
//  1. Partition refinement splits the elements around a pivot p into blocks
//     that must stay contiguous in every compatible order.
//  2. Each block is ordered recursively and collapsed into one or two
//     copoints: an anchor element plus the block's member sequence.
//  3. The anchors are totally ordered around p by pairwise distance
//     comparisons (a bipartition sort), and the member sequences are
//     concatenated in that order.
//
// The candidate produced by the recursion is never trusted on its own: the
// table is reordered by the candidate and the Robinson property is checked
// independently. Result.Permutation is always returned, even when
// Result.Robinson is false.
//
// # Element Ids
//
// Elements are identified by 1-based ids in [1, n]. Only the upper triangle
// of the matrix is read: Lookup(a, b) always resolves to the entry at
// (min(a, b), max(a, b)).
//
// # Basic Usage
//
//	t, err := robinson.New([][]int{
//	    {0, 2, 1},
//	    {0, 0, 1},
//	    {0, 0, 0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := robinson.Resolve(t)
//	fmt.Println(res.Robinson, res.Permutation) // true [1 3 2]
//
// # Recursion Depth
//
// The order assembler and the recursive refiner recurse to a depth
// proportional to n on chain-like inputs. Goroutine stacks grow on demand, so
// no special provisioning is needed for ordinary sizes; for very large inputs
// raise the limit with runtime/debug.SetMaxStack (the CLI exposes this as
// --max-stack).
//
// # Tracing
//
// [NewResolver] with [WithTrace] records the decomposition tree (pivot,
// blocks and copoints per level). The trace can be rendered with
// [Trace.ToDOT] or [Trace.RenderSVG] for inspection.
package robinson
