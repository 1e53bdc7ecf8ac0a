// Package render groups the drawing outputs of drawrows.
//
// The [sink] subpackage turns a row assignment into an SVG picture (one bar
// per interval on its row, plus a depth strip) or a JSON document.
//
//	svg := sink.RenderSVG(res, sink.WithWidth(1000), sink.WithLabels())
//	data, err := sink.RenderJSON(res, sink.WithJSONRows())
//
// [sink]: github.com/matzehuels/drawrows/pkg/render/sink
package render
