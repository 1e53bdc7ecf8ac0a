package rows

import (
	"fmt"

	"github.com/matzehuels/drawrows/pkg/interval"
)

// Unassigned marks an endpoint whose row has not been set yet.
const Unassigned = -1

// Kind tells whether an endpoint opens or closes its interval.
type Kind uint8

const (
	Start Kind = iota
	End
)

func (k Kind) String() string {
	if k == Start {
		return "start"
	}
	return "end"
}

// Endpoint is one boundary of an interval, processed as a sweep event.
// Only Row changes after expansion.
type Endpoint struct {
	Value int64
	Seq   int
	Kind  Kind
	Row   int
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s(%d)#%d@%d", e.Kind, e.Value, e.Seq, e.Row)
}

// Expand returns the endpoints of ivs. The Start of ivs[i] is stored at
// index 2i and its End at 2i+1.
func Expand(ivs []interval.Interval) []Endpoint {
	eps := make([]Endpoint, 0, 2*len(ivs))
	for _, iv := range ivs {
		eps = append(eps,
			Endpoint{Value: iv.Begin, Seq: iv.Seq, Kind: Start, Row: Unassigned},
			Endpoint{Value: iv.End, Seq: iv.Seq, Kind: End, Row: Unassigned},
		)
	}
	return eps
}

// Partner returns the index of the other endpoint of the same interval.
func Partner(i int) int { return i ^ 1 }
