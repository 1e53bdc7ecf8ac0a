// Package interval reads closed integer intervals from line-oriented text.
//
// Each record holds exactly two whitespace-separated base-10 integers,
// "begin end", with begin <= end:
//
//	1 5
//	2 3
//	6 8
//
// Records are numbered from 1 in arrival order. Blank and whitespace-only
// lines are skipped and do not consume a sequence number; any other line
// that is not a valid record is MALFORMED_RECORD. Errors always report the
// physical line number so the offending line can be found in the file.
//
// # Errors
//
// Bad records abort reading immediately. The returned error is an
// [errors.RecordError] wrapping a code:
//
//   - MALFORMED_RECORD: missing or extra integers, non-numeric tokens,
//     values outside the supported range
//   - INVALID_RANGE: begin > end
//
// Failure to open a file is RESOURCE_UNAVAILABLE.
//
// [errors.RecordError]: github.com/matzehuels/drawrows/pkg/errors.RecordError
package interval
