package interval

import "fmt"

// Interval is a closed integer range read from one input record.
// Intervals are never mutated after parsing.
type Interval struct {
	Seq   int   // 1-based record number, input order
	Begin int64 // inclusive
	End   int64 // inclusive
}

// Len returns the number of integer values the interval covers. It is
// unsigned so that intervals spanning most of the int64 range do not wrap.
func (iv Interval) Len() uint64 { return uint64(iv.End) - uint64(iv.Begin) + 1 }

// Overlaps reports whether iv and o share at least one value.
// Intervals that touch at a single value overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Begin <= o.End && o.Begin <= iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("#%d[%d,%d]", iv.Seq, iv.Begin, iv.End)
}

// New builds an interval, reporting INVALID_RANGE when begin > end.
func New(seq int, begin, end int64) (Interval, error) {
	if err := checkRange(begin, end); err != nil {
		return Interval{}, err
	}
	return Interval{Seq: seq, Begin: begin, End: end}, nil
}

// FromPairs numbers pairs of (begin, end) in order, starting at 1.
func FromPairs(pairs ...[2]int64) ([]Interval, error) {
	out := make([]Interval, 0, len(pairs))
	for i, p := range pairs {
		iv, err := New(i+1, p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i+1, err)
		}
		out = append(out, iv)
	}
	return out, nil
}
