package rows

import (
	"cmp"
	"slices"
)

// Order is a permutation of indexes into an endpoint slice.
type Order []int

// ByValue orders endpoints for the sweep.
//
// Endpoints sort by value, with Start before End at equal values so that an
// interval ending where another begins counts as overlapping. Starts at the
// same value put the interval that ends later first; that is what gives the
// longest interval the lowest row. Remaining ties fall back to sequence id.
func ByValue(eps []Endpoint) Order {
	order := identity(len(eps))
	slices.SortStableFunc(order, func(a, b int) int {
		ea, eb := eps[a], eps[b]
		if c := cmp.Compare(ea.Value, eb.Value); c != 0 {
			return c
		}
		if c := cmp.Compare(ea.Kind, eb.Kind); c != 0 {
			return c
		}
		if ea.Kind == Start {
			if c := cmp.Compare(eps[Partner(b)].Value, eps[Partner(a)].Value); c != 0 {
				return c
			}
		}
		return cmp.Compare(ea.Seq, eb.Seq)
	})
	return order
}

// BySequence orders endpoints by input sequence id, Start before End.
func BySequence(eps []Endpoint) Order {
	order := identity(len(eps))
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(eps[a].Seq, eps[b].Seq); c != 0 {
			return c
		}
		return cmp.Compare(eps[a].Kind, eps[b].Kind)
	})
	return order
}

func identity(n int) Order {
	order := make(Order, n)
	for i := range order {
		order[i] = i
	}
	return order
}
