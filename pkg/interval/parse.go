package interval

import (
	stderrors "errors"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/drawrows/pkg/errors"
)

// ParseRecord parses one "begin end" record.
// The returned error is a coded *errors.Error without line information;
// [Reader] attaches the line number.
func ParseRecord(line string) (begin, end int64, err error) {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return 0, 0, errors.New(errors.ErrCodeMalformedRecord, "empty record")
	case len(fields) == 1:
		if _, err := parseValue(fields[0]); err != nil {
			return 0, 0, err
		}
		return 0, 0, errors.New(errors.ErrCodeMalformedRecord, "missing an integer in a pair of integers")
	case len(fields) > 2:
		return 0, 0, errors.New(errors.ErrCodeMalformedRecord, "one pair of integers per line, got %d values", len(fields))
	}

	if begin, err = parseValue(fields[0]); err != nil {
		return 0, 0, err
	}
	if end, err = parseValue(fields[1]); err != nil {
		return 0, 0, err
	}
	if err := checkRange(begin, end); err != nil {
		return 0, 0, err
	}
	return begin, end, nil
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, errors.New(errors.ErrCodeMalformedRecord, "value %q out of range", s)
		}
		return 0, errors.New(errors.ErrCodeMalformedRecord, "value %q is not an integer", s)
	}
	// The depth pass addresses the value after an interval's end.
	if v == math.MaxInt64 {
		return 0, errors.New(errors.ErrCodeMalformedRecord, "value %q out of range", s)
	}
	return v, nil
}

func checkRange(begin, end int64) error {
	if begin > end {
		return errors.New(errors.ErrCodeInvalidRange, "begin %d is greater than end %d", begin, end)
	}
	return nil
}
