package sink

import (
	"encoding/json"

	"github.com/matzehuels/drawrows/pkg/core/rows"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	source     string
	withGroups bool
}

// WithJSONSource records the input file name in the output.
func WithJSONSource(path string) JSONOption { return func(r *jsonRenderer) { r.source = path } }

// WithJSONRows adds the per-row grouping of interval sequence numbers.
func WithJSONRows() JSONOption { return func(r *jsonRenderer) { r.withGroups = true } }

type jsonOutput struct {
	Source    string         `json:"source,omitempty"`
	Stats     jsonStats      `json:"stats"`
	Intervals []jsonInterval `json:"intervals"`
	Segments  []rows.Segment `json:"segments"`
	Rows      map[int][]int  `json:"rows,omitempty"`
}

type jsonStats struct {
	Intervals int   `json:"intervals"`
	Rows      int   `json:"rows"`
	Segments  int   `json:"segments"`
	MaxDepth  int   `json:"max_depth"`
	Low       int64 `json:"low"`
	High      int64 `json:"high"`
}

type jsonInterval struct {
	Seq   int   `json:"seq"`
	Begin int64 `json:"begin"`
	End   int64 `json:"end"`
	Row   int   `json:"row"`
}

// RenderJSON exports res as a pretty-printed JSON document. Intervals keep
// input order; segments are ascending.
func RenderJSON(res *rows.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	low, high, _ := res.Span()
	out := jsonOutput{
		Source: r.source,
		Stats: jsonStats{
			Intervals: len(res.Intervals),
			Rows:      res.RowCount,
			Segments:  len(res.Segments),
			MaxDepth:  res.MaxDepth,
			Low:       low,
			High:      high,
		},
		Intervals: make([]jsonInterval, len(res.Intervals)),
		Segments:  res.Segments,
	}
	if out.Segments == nil {
		out.Segments = []rows.Segment{}
	}
	for i, iv := range res.Intervals {
		out.Intervals[i] = jsonInterval{Seq: iv.Seq, Begin: iv.Begin, End: iv.End, Row: res.Rows[i]}
	}
	if r.withGroups {
		out.Rows = make(map[int][]int, res.RowCount)
		for row, members := range res.ByRow() {
			seqs := make([]int, len(members))
			for k, i := range members {
				seqs[k] = res.Intervals[i].Seq
			}
			out.Rows[row+1] = seqs
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
