package rows

import (
	"slices"

	"github.com/matzehuels/drawrows/pkg/errors"
)

// Sweep is the row assignment state machine.
//
// An End always releases the row its own interval was opened on; [Sweep.Run]
// looks that row up through the Start partner. free holds rows available for
// reuse and decides which row the next Start gets.
//
// active and pending only check integrity: they record which rows are in
// use so that closing a row nobody holds is reported as INTERNAL_ERROR.
// They never choose the row to release.
type Sweep struct {
	free    *freeRows
	active  []int
	pending []int
	high    int
}

// NewSweep returns a sweep whose only free row is 1.
func NewSweep() *Sweep {
	return &Sweep{free: newFreeRows()}
}

// Open hands out the lowest free row for a Start endpoint.
func (s *Sweep) Open() int {
	row := s.free.take()
	s.pending = append(s.pending, row)
	s.high = max(s.high, row)
	return row
}

// Close releases row for an End endpoint and returns it. row must be in
// use; for nested intervals it is the top of the active stack, for crossing
// intervals it may sit deeper and is removed from there.
func (s *Sweep) Close(row int) (int, error) {
	s.active = append(s.active, s.pending...)
	s.pending = s.pending[:0]

	top := len(s.active) - 1
	if top >= 0 && s.active[top] == row {
		s.active = s.active[:top]
	} else {
		idx := slices.Index(s.active, row)
		if idx < 0 {
			return Unassigned, errors.New(errors.ErrCodeInternal, "row %d closed but not in use", row)
		}
		s.active = slices.Delete(s.active, idx, idx+1)
	}
	s.free.release(row)
	return row, nil
}

// Rows returns the highest row handed out so far.
func (s *Sweep) Rows() int { return s.high }

// Run walks eps in the given value order and sets every Row.
func (s *Sweep) Run(eps []Endpoint, order Order) error {
	for _, i := range order {
		ep := &eps[i]
		switch ep.Kind {
		case Start:
			ep.Row = s.Open()
		case End:
			owner := eps[Partner(i)].Row
			if owner == Unassigned {
				return errors.New(errors.ErrCodeInternal, "interval %d ends at %d before it starts", ep.Seq, ep.Value)
			}
			row, err := s.Close(owner)
			if err != nil {
				return err
			}
			ep.Row = row
		}
	}
	return nil
}
