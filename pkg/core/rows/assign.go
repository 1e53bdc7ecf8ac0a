package rows

import (
	"math"

	"github.com/matzehuels/drawrows/pkg/errors"
	"github.com/matzehuels/drawrows/pkg/interval"
)

// Result holds the outcome of [Assign].
type Result struct {
	// Intervals is the input, in input order.
	Intervals []interval.Interval

	// Rows[i] is the drawing row of Intervals[i]. Rows start at 1.
	Rows []int

	// Segments are the depth segments in ascending order.
	Segments []Segment

	// RowCount is the number of distinct rows used.
	RowCount int

	// MaxDepth is the largest depth among Segments.
	MaxDepth int

	// Reassigned counts Start rows changed by the tie-break pass.
	Reassigned int
}

// Assign computes drawing rows and depth segments for ivs.
// Intervals must satisfy Begin <= End; their Seq values are only used for
// tie-breaking and reporting.
func Assign(ivs []interval.Interval) (*Result, error) {
	for i, iv := range ivs {
		if iv.Begin > iv.End {
			return nil, errors.New(errors.ErrCodeInvalidRange, "interval %d: begin %d is greater than end %d", i+1, iv.Begin, iv.End)
		}
		if iv.End == math.MaxInt64 {
			return nil, errors.New(errors.ErrCodeInvalidRange, "interval %d: end %d is out of range", i+1, iv.End)
		}
	}

	eps := Expand(ivs)
	byValue := ByValue(eps)

	sweep := NewSweep()
	if err := sweep.Run(eps, byValue); err != nil {
		return nil, err
	}
	segs := Depths(eps, byValue)

	bySeq := BySequence(eps)
	reassigned := Resolve(eps, bySeq)

	return &Result{
		Intervals:  ivs,
		Rows:       collectRows(eps, bySeq),
		Segments:   segs,
		RowCount:   sweep.Rows(),
		MaxDepth:   MaxDepth(segs),
		Reassigned: reassigned,
	}, nil
}

// collectRows reads the Start row of every interval in sequence order.
func collectRows(eps []Endpoint, bySeq Order) []int {
	out := make([]int, 0, len(eps)/2)
	for _, i := range bySeq {
		if eps[i].Kind == Start {
			out = append(out, eps[i].Row)
		}
	}
	return out
}

// ByRow groups interval positions by their row, in input order within
// each row. The returned slice is indexed by row-1.
func (r *Result) ByRow() [][]int {
	out := make([][]int, r.RowCount)
	for i, row := range r.Rows {
		out[row-1] = append(out[row-1], i)
	}
	return out
}

// Span returns the smallest and largest value covered by any interval.
// ok is false for an empty result.
func (r *Result) Span() (low, high int64, ok bool) {
	for i, iv := range r.Intervals {
		if i == 0 || iv.Begin < low {
			low = iv.Begin
		}
		if i == 0 || iv.End > high {
			high = iv.End
		}
	}
	return low, high, len(r.Intervals) > 0
}
