// Package sink renders row assignments as drawings and data exports.
//
// # SVG
//
// [RenderSVG] draws every interval as a bar on its row. The x axis spans
// the values covered by the input; row 1 is drawn at the top. A strip
// under the rows shades every depth segment by its depth, so dense regions
// stand out.
//
//	svg := sink.RenderSVG(res, sink.WithWidth(1200), sink.WithLabels())
//
// # JSON
//
// [RenderJSON] exports intervals with their rows, the depth segments, and
// summary counts as an indented document suitable for other tools.
//
// Both renderers are pure functions of their input and safe to call
// concurrently.
package sink
