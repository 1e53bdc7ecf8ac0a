package rows

import (
	"cmp"
	"slices"

	"github.com/matzehuels/drawrows/pkg/errors"
)

// Verify checks r against the guarantees of [Assign]:
//
//   - overlapping intervals never share a row
//   - the number of rows used equals the maximum depth
//   - segments are ascending, disjoint, positive, and tile exactly the union
//     of all intervals
//   - among intervals with the same start, a longer one never sits on a
//     higher row than a shorter one
//
// It returns an INTERNAL_ERROR describing the first violation found.
func Verify(r *Result) error {
	if len(r.Rows) != len(r.Intervals) {
		return errors.New(errors.ErrCodeInternal, "%d rows for %d intervals", len(r.Rows), len(r.Intervals))
	}
	for _, check := range []func(*Result) error{
		verifyNoSharedRows,
		verifyTight,
		verifySegments,
		verifyTieBreak,
	} {
		if err := check(r); err != nil {
			return err
		}
	}
	return nil
}

func verifyNoSharedRows(r *Result) error {
	for i, row := range r.Rows {
		if row < 1 {
			return errors.New(errors.ErrCodeInternal, "interval %v has no row", r.Intervals[i])
		}
	}
	idx := identity(len(r.Intervals))
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(r.Rows[a], r.Rows[b]); c != 0 {
			return c
		}
		return cmp.Compare(r.Intervals[a].Begin, r.Intervals[b].Begin)
	})
	for k := 1; k < len(idx); k++ {
		a, b := idx[k-1], idx[k]
		if r.Rows[a] == r.Rows[b] && r.Intervals[a].Overlaps(r.Intervals[b]) {
			return errors.New(errors.ErrCodeInternal, "intervals %v and %v overlap on row %d", r.Intervals[a], r.Intervals[b], r.Rows[a])
		}
	}
	return nil
}

func verifyTight(r *Result) error {
	used := make(map[int]struct{}, r.RowCount)
	for _, row := range r.Rows {
		used[row] = struct{}{}
	}
	if len(used) != r.MaxDepth {
		return errors.New(errors.ErrCodeInternal, "%d rows used but maximum depth is %d", len(used), r.MaxDepth)
	}
	return nil
}

func verifySegments(r *Result) error {
	var blocks []Segment
	for k, s := range r.Segments {
		if s.Low > s.High || s.Depth <= 0 {
			return errors.New(errors.ErrCodeInternal, "invalid segment %v", s)
		}
		if k == 0 {
			blocks = append(blocks, s)
			continue
		}
		prev := &blocks[len(blocks)-1]
		switch {
		case s.Low <= prev.High:
			return errors.New(errors.ErrCodeInternal, "segment %v overlaps or precedes %v", s, r.Segments[k-1])
		case s.Low == prev.High+1:
			prev.High = s.High
		default:
			blocks = append(blocks, s)
		}
	}

	union := unionOf(r)
	if len(union) != len(blocks) {
		return errors.New(errors.ErrCodeInternal, "segments cover %d ranges, intervals cover %d", len(blocks), len(union))
	}
	for k := range union {
		if union[k].Low != blocks[k].Low || union[k].High != blocks[k].High {
			return errors.New(errors.ErrCodeInternal, "segments cover [%d,%d], intervals cover [%d,%d]",
				blocks[k].Low, blocks[k].High, union[k].Low, union[k].High)
		}
	}
	return nil
}

// unionOf merges the intervals of r into disjoint, non-adjacent ranges.
func unionOf(r *Result) []Segment {
	idx := identity(len(r.Intervals))
	slices.SortFunc(idx, func(a, b int) int {
		return cmp.Compare(r.Intervals[a].Begin, r.Intervals[b].Begin)
	})
	var out []Segment
	for _, i := range idx {
		iv := r.Intervals[i]
		if n := len(out); n > 0 && iv.Begin <= out[n-1].High+1 {
			out[n-1].High = max(out[n-1].High, iv.End)
			continue
		}
		out = append(out, Segment{Low: iv.Begin, High: iv.End})
	}
	return out
}

func verifyTieBreak(r *Result) error {
	idx := identity(len(r.Intervals))
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(r.Intervals[a].Begin, r.Intervals[b].Begin); c != 0 {
			return c
		}
		if c := cmp.Compare(r.Intervals[b].End, r.Intervals[a].End); c != 0 {
			return c
		}
		return cmp.Compare(r.Rows[a], r.Rows[b])
	})
	for k := 1; k < len(idx); k++ {
		a, b := idx[k-1], idx[k]
		if r.Intervals[a].Begin != r.Intervals[b].Begin || r.Intervals[a].End == r.Intervals[b].End {
			continue
		}
		if r.Rows[a] > r.Rows[b] {
			return errors.New(errors.ErrCodeInternal, "longer interval %v on row %d above shorter %v on row %d",
				r.Intervals[a], r.Rows[a], r.Intervals[b], r.Rows[b])
		}
	}
	return nil
}
