package rows

import (
	"cmp"
	"slices"
)

// Resolve enforces the tie-break policy for intervals sharing a start value.
//
// Start endpoints are visited in sequence order and grouped by value. In
// every group the interval with the largest end receives the smallest row
// held by the group, the next largest end the next row, and so on. Equal
// ends keep sequence order. Only Start rows are rewritten. Resolve returns
// how many Start rows changed.
func Resolve(eps []Endpoint, bySeq Order) int {
	groups := make(map[int64][]int)
	var keys []int64
	for _, i := range bySeq {
		if eps[i].Kind != Start {
			continue
		}
		v := eps[i].Value
		if _, ok := groups[v]; !ok {
			keys = append(keys, v)
		}
		groups[v] = append(groups[v], i)
	}

	changed := 0
	for _, v := range keys {
		starts := groups[v]
		if len(starts) < 2 {
			continue
		}
		rows := make([]int, len(starts))
		for k, i := range starts {
			rows[k] = eps[i].Row
		}
		slices.Sort(rows)

		byEnd := slices.Clone(starts)
		slices.SortStableFunc(byEnd, func(a, b int) int {
			return cmp.Compare(eps[Partner(b)].Value, eps[Partner(a)].Value)
		})
		for k, i := range byEnd {
			if eps[i].Row != rows[k] {
				eps[i].Row = rows[k]
				changed++
			}
		}
	}
	return changed
}
