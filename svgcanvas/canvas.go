// Package svgcanvas draws charts as SVG documents.
package svgcanvas

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/midbel/linecharts"
	"github.com/midbel/svg"
)

const rendering = "geometricPrecision"

// Canvas records drawing operations as SVG elements. Nothing is written until
// WriteTo is called.
type Canvas struct {
	Width      float64
	Height     float64
	OmitProlog bool

	elements []svg.Element
}

func New(width, height float64) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
	}
}

func (c *Canvas) Len() int {
	return len(c.elements)
}

func (c *Canvas) Reset() {
	c.elements = c.elements[:0]
}

func (c *Canvas) StrokePath(p *gg.Path, st linecharts.Stroke) error {
	pat, err := convertPath(p)
	if err != nil {
		return err
	}
	pat.Stroke = getStroke(st)
	pat.Fill = svg.NewFill("none")
	c.elements = append(c.elements, pat.AsElement())
	return nil
}

func (c *Canvas) StrokeSegments(pts []gg.Point, st linecharts.Stroke) error {
	if len(pts)%2 != 0 {
		return fmt.Errorf("svg: odd number of points for segments (%d)", len(pts))
	}
	var grp svg.Group
	grp.Class = append(grp.Class, "segments")
	for i := 0; i < len(pts); i += 2 {
		li := svg.NewLine(getPos(pts[i]), getPos(pts[i+1]))
		li.Stroke = getStroke(st)
		grp.Append(li.AsElement())
	}
	c.elements = append(c.elements, grp.AsElement())
	return nil
}

func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	pat, err := convertPath(p)
	if err != nil {
		return err
	}
	pat.Fill = getFill(col)
	c.elements = append(c.elements, pat.AsElement())
	return nil
}

func (c *Canvas) FillCircle(center gg.Point, radius float64, col gg.RGBA) error {
	var el svg.Circle
	el.Pos = getPos(center)
	el.Radius = radius
	el.Fill = getFill(col)
	c.elements = append(c.elements, el.AsElement())
	return nil
}

func (c *Canvas) DrawText(str string, at gg.Point, align linecharts.Align, col gg.RGBA, size float64) error {
	txt := svg.NewText(str)
	txt.Pos = getPos(at)
	txt.Font = svg.NewFont(size)
	txt.Anchor = align.String()
	txt.Baseline = "hanging"

	var grp svg.Group
	grp.Class = append(grp.Class, "label")
	grp.Fill = getFill(col)
	grp.Append(txt.AsElement())
	c.elements = append(c.elements, grp.AsElement())
	return nil
}

// WriteTo writes the SVG document holding all the recorded elements.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = c.OmitProlog
	for _, e := range c.elements {
		el.Append(e)
	}
	var (
		cw = countWriter{Writer: w}
		bw = bufio.NewWriter(&cw)
	)
	el.Render(bw)
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

type countWriter struct {
	io.Writer
	n   int64
	err error
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.n += int64(n)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

func convertPath(p *gg.Path) (svg.Path, error) {
	var pat svg.Path
	pat.Rendering = rendering
	if p == nil {
		return pat, fmt.Errorf("svg: nil path")
	}
	var current gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pat.AbsMoveTo(getPos(e.Point))
			current = e.Point
		case gg.LineTo:
			pat.AbsLineTo(getPos(e.Point))
			current = e.Point
		case gg.CubicTo:
			pat.AbsCubicCurve(getPos(e.Point), getPos(e.Control1), getPos(e.Control2))
			current = e.Point
		case gg.QuadTo:
			var (
				c1 = current.Add(e.Control.Sub(current).Mul(2.0 / 3))
				c2 = e.Point.Add(e.Control.Sub(e.Point).Mul(2.0 / 3))
			)
			pat.AbsCubicCurve(getPos(e.Point), getPos(c1), getPos(c2))
			current = e.Point
		case gg.Close:
			pat.ClosePath()
		default:
			return pat, fmt.Errorf("svg: unsupported path element %T", el)
		}
	}
	return pat, nil
}

func getPos(p gg.Point) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func getStroke(st linecharts.Stroke) svg.Stroke {
	s := svg.NewStroke(hexColor(st.Color), st.Width)
	s.Opacity = st.Color.A
	return s
}

func getFill(col gg.RGBA) svg.Fill {
	f := svg.NewFill(hexColor(col))
	f.Opacity = col.A
	return f
}

func hexColor(c gg.RGBA) string {
	var (
		r = uint8(clamp(c.R)*255 + 0.5)
		g = uint8(clamp(c.G)*255 + 0.5)
		b = uint8(clamp(c.B)*255 + 0.5)
	)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp(v float64) float64 {
	return max(0, min(v, 1))
}
