package linecharts

import (
	"github.com/gogpu/gg"
	"github.com/midbel/slices"
)

// PathInput describes the part of a series to turn into geometry.
type PathInput struct {
	Series Series
	MapX   func(Entry) float64
	Matrix gg.Matrix
	PhaseY float64

	// From and To delimit the entries to use: [From, To).
	From int
	To   int

	Stepped   bool
	Intensity float64

	// Viewport is used to cull segments outside the content area. A nil
	// Viewport disables culling.
	Viewport *Viewport
}

func (in PathInput) bounds() (int, int) {
	if in.Series == nil {
		return 0, 0
	}
	var (
		n    = in.Series.Len()
		from = clamp(in.From, 0, n)
		to   = clamp(in.To, 0, n)
	)
	return from, to
}

func (in PathInput) inRight(x float64) bool {
	return in.Viewport == nil || in.Viewport.IsInBoundsRight(x)
}

func (in PathInput) inLeft(x float64) bool {
	return in.Viewport == nil || in.Viewport.IsInBoundsLeft(x)
}

func (in PathInput) outsideY(p1, p2 gg.Point) bool {
	if in.Viewport == nil {
		return false
	}
	var (
		top    = in.Viewport.ContentTop()
		bottom = in.Viewport.ContentBottom()
	)
	if p1.Y < top && p2.Y < top {
		return true
	}
	return p1.Y > bottom && p2.Y > bottom
}

// PathBuilder turns series into paths. Its buffers are reused between calls
// so a PathBuilder must not be shared between goroutines.
type PathBuilder struct {
	buf scratch
}

// collect maps the usable entries of the input. Entries whose x or y is NaN
// are left out so the line is drawn straight over them. When pixels is false
// the points stay in value space.
func (b *PathBuilder) collect(in PathInput, pixels bool) {
	from, to := in.bounds()
	b.buf.reset(to - from)
	if in.MapX == nil {
		return
	}
	var (
		phase   = in.PhaseY
		skipped int
	)
	for j := from; j < to; j++ {
		e := in.Series.At(j)
		x := in.MapX(e)
		if isNaN(x) || isNaN(e.Value) {
			skipped++
			continue
		}
		p := gg.Pt(x, e.Value*phase)
		if pixels {
			p = in.Matrix.TransformPoint(p)
		}
		b.buf.push(j, p)
	}
	if skipped > 0 {
		Logger().Debug("entries skipped while building path", "count", skipped)
	}
}

// Linear returns the polyline of the input in pixel space or nil when less
// than one segment is visible.
func (b *PathBuilder) Linear(in PathInput) *gg.Path {
	b.collect(in, true)
	if b.buf.len() < 2 {
		return nil
	}
	var (
		pat   *gg.Path
		prev  = slices.Fst(b.buf.points)
		items = slices.Rest(b.buf.points)
	)
	for _, cur := range items {
		if !in.inRight(prev.X) {
			break
		}
		if !in.inLeft(cur.X) {
			prev = cur
			continue
		}
		if pat == nil {
			pat = gg.NewPath()
			pat.MoveTo(prev.X, prev.Y)
		}
		if in.Stepped {
			pat.LineTo(cur.X, prev.Y)
		}
		pat.LineTo(cur.X, cur.Y)
		prev = cur
	}
	return pat
}

// Segments calls emit for each visible segment with the index of the entry
// starting it. Points hold 2 points, or 4 for stepped lines, and are only
// valid during the call. The first error returned by emit stops the
// iteration.
func (b *PathBuilder) Segments(in PathInput, emit func(int, []gg.Point) error) error {
	b.collect(in, true)
	if b.buf.len() < 2 {
		return nil
	}
	size := 2
	if in.Stepped {
		size = 4
	}
	seg := b.buf.segmentBuffer(size)
	for i := 1; i < b.buf.len(); i++ {
		var (
			prev = b.buf.points[i-1]
			cur  = b.buf.points[i]
		)
		if !in.inRight(prev.X) {
			break
		}
		if !in.inLeft(cur.X) || in.outsideY(prev, cur) {
			continue
		}
		seg[0] = prev
		if in.Stepped {
			seg[1] = gg.Pt(cur.X, prev.Y)
			seg[2] = seg[1]
			seg[3] = cur
		} else {
			seg[1] = cur
		}
		if err := emit(b.buf.indices[i-1], seg); err != nil {
			return err
		}
	}
	return nil
}

// Cubic returns a smooth curve through the usable entries of the input. The
// tangent at each point is taken from its neighbours; the first and the last
// points reuse themselves as missing neighbour.
func (b *PathBuilder) Cubic(in PathInput) *gg.Path {
	b.collect(in, false)
	n := b.buf.len()
	if n < 2 {
		return nil
	}
	var (
		pts = b.buf.points
		m   = in.Matrix
		pat = gg.NewPath()
	)
	start := m.TransformPoint(pts[0])
	pat.MoveTo(start.X, start.Y)
	for j := 1; j < n; j++ {
		var (
			prevPrev = pts[max(j-2, 0)]
			prev     = pts[j-1]
			cur      = pts[j]
			next     = pts[min(j+1, n-1)]
		)
		ctrl1 := gg.Pt(
			prev.X+(cur.X-prevPrev.X)*in.Intensity,
			prev.Y+(cur.Y-prevPrev.Y)*in.Intensity,
		)
		ctrl2 := gg.Pt(
			cur.X-(next.X-prev.X)*in.Intensity,
			cur.Y-(next.Y-prev.Y)*in.Intensity,
		)
		var (
			c1 = m.TransformPoint(ctrl1)
			c2 = m.TransformPoint(ctrl2)
			to = m.TransformPoint(cur)
		)
		pat.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	}
	return pat
}

// Fill closes a copy of stroke on the horizontal line at the value baseline.
// It returns nil when stroke has less than two points.
func (b *PathBuilder) Fill(stroke *gg.Path, baseline float64, m gg.Matrix) *gg.Path {
	if stroke == nil {
		return nil
	}
	first, last, count := endpoints(stroke)
	if count < 2 {
		return nil
	}
	var (
		y   = m.TransformPoint(gg.Pt(0, baseline)).Y
		pat = stroke.Clone()
	)
	pat.LineTo(last.X, y)
	pat.LineTo(first.X, y)
	pat.Close()
	return pat
}

func endpoints(p *gg.Path) (gg.Point, gg.Point, int) {
	var (
		first gg.Point
		last  gg.Point
		count int
	)
	for _, el := range p.Elements() {
		var pt gg.Point
		switch e := el.(type) {
		case gg.MoveTo:
			pt = e.Point
		case gg.LineTo:
			pt = e.Point
		case gg.CubicTo:
			pt = e.Point
		case gg.QuadTo:
			pt = e.Point
		default:
			continue
		}
		if count == 0 {
			first = pt
		}
		last = pt
		count++
	}
	return first, last, count
}
