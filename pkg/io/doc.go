// Package io writes row assignment results in the plain text formats
// consumed downstream.
//
// # Row File
//
// One drawing row per input interval, in input order:
//
//	1
//	2
//	1
//
// # Segment File
//
// One depth segment per line, tab separated, ascending by low value:
//
//	1	1	1
//	2	3	2
//	4	5	1
//	6	8	1
//
// # Export
//
// Use [WriteRows] and [WriteSegments] to write to any io.Writer, or
// [Export] to write a set of named files into a directory. Export renders
// every file in memory first and then moves them into place, so a failed
// run leaves no partial output behind.
//
// Default file names follow the historical tool: PartA.txt for rows and
// PartB.txt for segments.
package io
