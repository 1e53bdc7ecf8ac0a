// Package rows assigns closed integer intervals to drawing rows.
//
// Overlapping intervals never share a row. Rows are reused greedily, lowest
// free row first, and among intervals that start at the same value the
// longest one receives the lowest row. The same sweep also yields the depth
// segments of the value axis: for every sub-range between two interval
// boundaries, the number of intervals covering it.
//
// # Passes
//
// [Assign] runs the passes in order:
//
//  1. [Expand] turns every interval into a Start and an End [Endpoint],
//     stored in one owned slice.
//  2. [ByValue] and [BySequence] compute two read-only orderings over that
//     slice. The slice itself is never re-sorted.
//  3. A [Sweep] walks the value order and hands out rows.
//  4. [Depths] walks the same order and emits [Segment] values.
//  5. [Resolve] regroups intervals by start value in input order and makes
//     sure the longest interval of each group holds the lowest row.
//
// The result reports rows in input order and segments in ascending order.
//
// # Example
//
//	ivs, _ := interval.FromPairs([2]int64{1, 5}, [2]int64{2, 3}, [2]int64{6, 8})
//	res, err := rows.Assign(ivs)
//	// res.Rows     == []int{1, 2, 1}
//	// res.Segments == (1,1,1) (2,3,2) (4,5,1) (6,8,1)
//
// Everything in this package is synchronous and allocation bounded by the
// number of intervals. Values are not safe for concurrent mutation.
package rows
