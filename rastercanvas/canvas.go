// Package rastercanvas draws charts into images with gogpu/gg.
package rastercanvas

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/midbel/linecharts"
)

type Option func(*Canvas) error

// WithFont loads the font used to draw text. Without it, text is not drawn.
func WithFont(file string) Option {
	return func(c *Canvas) error {
		src, err := text.NewFontSourceFromFile(file)
		if err != nil {
			return fmt.Errorf("load font %s: %w", file, err)
		}
		c.font = src
		return nil
	}
}

// WithBackground clears the image with the given colour.
func WithBackground(col gg.RGBA) Option {
	return func(c *Canvas) error {
		c.ctx.ClearWithColor(col)
		return nil
	}
}

type Canvas struct {
	ctx   *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face
}

func New(width, height int, options ...Option) (*Canvas, error) {
	c := Canvas{
		ctx:   gg.NewContext(width, height),
		faces: make(map[float64]text.Face),
	}
	for _, o := range options {
		if err := o(&c); err != nil {
			c.ctx.Close()
			return nil, err
		}
	}
	return &c, nil
}

func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

func (c *Canvas) StrokePath(p *gg.Path, st linecharts.Stroke) error {
	if err := c.appendPath(p); err != nil {
		return err
	}
	c.setStroke(st)
	return c.ctx.Stroke()
}

func (c *Canvas) StrokeSegments(pts []gg.Point, st linecharts.Stroke) error {
	if len(pts)%2 != 0 {
		return fmt.Errorf("raster: odd number of points for segments (%d)", len(pts))
	}
	for i := 0; i < len(pts); i += 2 {
		c.ctx.MoveTo(pts[i].X, pts[i].Y)
		c.ctx.LineTo(pts[i+1].X, pts[i+1].Y)
	}
	c.setStroke(st)
	return c.ctx.Stroke()
}

func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	if err := c.appendPath(p); err != nil {
		return err
	}
	c.setColor(col)
	return c.ctx.Fill()
}

func (c *Canvas) FillCircle(center gg.Point, radius float64, col gg.RGBA) error {
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.setColor(col)
	return c.ctx.Fill()
}

// DrawText does nothing when no font was given.
func (c *Canvas) DrawText(str string, at gg.Point, align linecharts.Align, col gg.RGBA, size float64) error {
	face := c.face(size)
	if face == nil {
		return nil
	}
	c.ctx.SetFont(face)
	c.setColor(col)
	// a vertical anchor of 1 puts the top of the text on the given point.
	c.ctx.DrawStringAnchored(str, at.X, at.Y, align.Anchor(), 1)
	return nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

func (c *Canvas) SavePNG(file string) error {
	return c.ctx.SavePNG(file)
}

func (c *Canvas) Close() error {
	if c.font != nil {
		c.font.Close()
	}
	return c.ctx.Close()
}

func (c *Canvas) face(size float64) text.Face {
	if c.font == nil {
		return nil
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.font.Face(size)
	c.faces[size] = f
	return f
}

func (c *Canvas) appendPath(p *gg.Path) error {
	if p == nil {
		return fmt.Errorf("raster: nil path")
	}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			c.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.ctx.ClosePath()
		default:
			return fmt.Errorf("raster: unsupported path element %T", el)
		}
	}
	return nil
}

func (c *Canvas) setColor(col gg.RGBA) {
	c.ctx.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *Canvas) setStroke(st linecharts.Stroke) {
	c.setColor(st.Color)
	c.ctx.SetLineWidth(st.Width)
	c.ctx.SetLineCap(st.Cap)
	if len(st.Dash) == 0 {
		c.ctx.ClearDash()
		return
	}
	c.ctx.SetDash(st.Dash...)
	c.ctx.SetDashOffset(st.DashPhase)
}
