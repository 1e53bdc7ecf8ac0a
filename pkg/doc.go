// Package pkg provides the libraries behind drawrows.
//
// # Overview
//
// drawrows stacks closed integer intervals into drawing rows so that
// overlapping intervals never share a row, and reports the coverage depth
// along the axis. The pkg directory is organized into these areas:
//
//  1. [interval] - Reading interval records
//  2. [core/rows] - Row assignment and depth segments
//  3. [io] - Plain text outputs
//  4. [render/sink] - SVG and JSON drawings
//  5. [pipeline] - Orchestration (load → assign → render → write)
//  6. [config], [errors], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
// The data flow through drawrows:
//
//	interval file
//	     ↓
//	[interval] package (parse records, number them)
//	     ↓
//	[core/rows] package (endpoint sweep, segments, tie-break)
//	     ↓
//	[io] and [render/sink] packages
//	     ↓
//	PartA.txt / PartB.txt / SVG / JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/drawrows/pkg/core/rows"
//	    "github.com/matzehuels/drawrows/pkg/interval"
//	)
//
//	ivs, _ := interval.FromPairs([2]int64{1, 5}, [2]int64{2, 3}, [2]int64{6, 8})
//	res, _ := rows.Assign(ivs)
//	fmt.Println(res.Rows)     // [1 2 1]
//	fmt.Println(res.Segments) // [(1,1,1) (2,3,2) (4,5,1) (6,8,1)]
//
// [interval]: github.com/matzehuels/drawrows/pkg/interval
// [core/rows]: github.com/matzehuels/drawrows/pkg/core/rows
// [io]: github.com/matzehuels/drawrows/pkg/io
// [render/sink]: github.com/matzehuels/drawrows/pkg/render/sink
// [pipeline]: github.com/matzehuels/drawrows/pkg/pipeline
// [config]: github.com/matzehuels/drawrows/pkg/config
// [errors]: github.com/matzehuels/drawrows/pkg/errors
// [observability]: github.com/matzehuels/drawrows/pkg/observability
// [buildinfo]: github.com/matzehuels/drawrows/pkg/buildinfo
package pkg
