package rows

import "fmt"

// Segment is a sub-range of the value axis with a constant number of
// covering intervals.
type Segment struct {
	Low   int64 `json:"low"`
	High  int64 `json:"high"`
	Depth int   `json:"depth"`
}

// Len returns the number of values the segment covers.
func (s Segment) Len() uint64 { return uint64(s.High) - uint64(s.Low) + 1 }

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Low, s.High, s.Depth)
}

// Depths emits the depth segments for eps walked in value order.
//
// A Start at v changes the depth at v, an End at v changes it at v+1.
// Whenever the walk reaches a new boundary while some interval is open,
// the range since the previous boundary is emitted with the depth that
// held over it. Several events at one position (equal start values, or an
// end directly followed by a start) produce no zero-width segment.
// Segments therefore break at every interval boundary, and gaps between
// disjoint intervals are not reported.
func Depths(eps []Endpoint, order Order) []Segment {
	var (
		segs  []Segment
		depth int
		last  int64
	)
	for _, i := range order {
		ep := eps[i]
		pos, delta := ep.Value, 1
		if ep.Kind == End {
			pos, delta = ep.Value+1, -1
		}
		if depth > 0 && pos > last {
			segs = append(segs, Segment{Low: last, High: pos - 1, Depth: depth})
		}
		last = pos
		depth += delta
	}
	return segs
}

// MaxDepth returns the largest depth among segs.
func MaxDepth(segs []Segment) int {
	d := 0
	for _, s := range segs {
		d = max(d, s.Depth)
	}
	return d
}
