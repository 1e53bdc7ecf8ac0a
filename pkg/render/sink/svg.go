package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/drawrows/pkg/core/rows"
)

// Drawing defaults.
const (
	DefaultWidth     = 800.0
	DefaultRowHeight = 12.0

	margin     = 20.0
	rowGap     = 2.0
	stripH     = 10.0
	stripGap   = 8.0
	fontSize   = 9.0
	minBarSize = 1.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width     float64
	rowHeight float64
	labels    bool
	title     string
}

// WithWidth sets the drawing width in pixels.
func WithWidth(w float64) SVGOption { return func(r *svgRenderer) { r.width = w } }

// WithRowHeight sets the height of one row in pixels.
func WithRowHeight(h float64) SVGOption { return func(r *svgRenderer) { r.rowHeight = h } }

// WithLabels prints the sequence number on every bar wide enough to hold it.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithTitle sets the document title.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: DefaultWidth, rowHeight: DefaultRowHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 2*margin {
		r.width = DefaultWidth
	}
	if r.rowHeight <= rowGap {
		r.rowHeight = DefaultRowHeight
	}
	return r
}

// scale maps values onto the horizontal drawing area.
type scale struct {
	low   int64
	span  float64
	left  float64
	width float64
}

// x returns the left edge of value v.
func (s scale) x(v int64) float64 {
	return s.left + (float64(v)-float64(s.low))/s.span*s.width
}

// RenderSVG draws res as an SVG document.
func RenderSVG(res *rows.Result, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	low, high, _ := res.Span()
	sc := scale{low: low, span: float64(high) - float64(low) + 1, left: margin, width: r.width - 2*margin}

	rowsTop := margin
	stripTop := rowsTop + float64(res.RowCount)*r.rowHeight + stripGap
	height := stripTop + stripH + margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	renderBars(&buf, &r, res, sc, rowsTop)
	renderDepthStrip(&buf, res, sc, stripTop)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBars(buf *bytes.Buffer, r *svgRenderer, res *rows.Result, sc scale, top float64) {
	barH := r.rowHeight - rowGap
	for i, iv := range res.Intervals {
		row := res.Rows[i]
		x := sc.x(iv.Begin)
		w := max(sc.x(iv.End+1)-x, minBarSize)
		y := top + float64(row-1)*r.rowHeight

		fmt.Fprintf(buf, `  <rect class="interval" id="interval-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#333" stroke-width="0.5">`,
			iv.Seq, x, y, w, barH, rowColor(row))
		fmt.Fprintf(buf, "<title>#%d [%d, %d] row %d</title></rect>\n", iv.Seq, iv.Begin, iv.End, row)

		label := fmt.Sprint(iv.Seq)
		if r.labels && w >= float64(len(label))*fontSize*0.6+2 {
			fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="monospace" font-size="%.0f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
				x+w/2, y+barH/2, fontSize, label)
		}
	}
}

func renderDepthStrip(buf *bytes.Buffer, res *rows.Result, sc scale, top float64) {
	if res.MaxDepth == 0 {
		return
	}
	for _, s := range res.Segments {
		x := sc.x(s.Low)
		w := max(sc.x(s.High+1)-x, minBarSize)
		opacity := 0.15 + 0.85*float64(s.Depth)/float64(res.MaxDepth)
		fmt.Fprintf(buf, `  <rect class="segment" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#1f4e79" fill-opacity="%.2f">`,
			x, top, w, stripH, opacity)
		fmt.Fprintf(buf, "<title>[%d, %d] depth %d</title></rect>\n", s.Low, s.High, s.Depth)
	}
}

// palette cycles by row so neighbouring rows are easy to tell apart.
var palette = []string{"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462", "#b3de69", "#fccde5"}

func rowColor(row int) string {
	return palette[(row-1)%len(palette)]
}

func escape(s string) string {
	var b bytes.Buffer
	for _, c := range s {
		switch c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
