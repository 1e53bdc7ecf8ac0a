package interval

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/drawrows/pkg/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Reader produces intervals from line-oriented text in arrival order.
type Reader struct {
	sc   *bufio.Scanner
	line int
	seq  int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next returns the next interval. It returns io.EOF after the last record.
// Any other error is fatal for the reader.
func (r *Reader) Next() (Interval, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		begin, end, err := ParseRecord(text)
		if err != nil {
			var coded *errors.Error
			if e, ok := err.(*errors.Error); ok {
				coded = e
			} else {
				coded = errors.Wrap(errors.ErrCodeMalformedRecord, err, "unreadable record")
			}
			return Interval{}, errors.Record(r.line, text, coded)
		}
		r.seq++
		return Interval{Seq: r.seq, Begin: begin, End: end}, nil
	}
	if err := r.sc.Err(); err != nil {
		return Interval{}, errors.Record(r.line+1, "", errors.Wrap(errors.ErrCodeMalformedRecord, err, "read failed"))
	}
	return Interval{}, io.EOF
}

// Line returns the number of physical lines consumed so far.
func (r *Reader) Line() int { return r.line }

// ReadAll drains the reader. It stops at the first bad record.
// ctx is checked between records.
func (r *Reader) ReadAll(ctx context.Context) ([]Interval, error) {
	var out []Interval
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iv, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
}

// Read parses every record from r.
func Read(ctx context.Context, r io.Reader) ([]Interval, error) {
	return NewReader(r).ReadAll(ctx)
}

// Load parses every record of the file at path.
func Load(ctx context.Context, path string) ([]Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "open input %s", path)
	}
	defer f.Close()
	return Read(ctx, f)
}
