package binet

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// fallbackFontHeight is used for label spacing when no face is set.
const fallbackFontHeight = 13.0

// Canvas is a Surface backed by a gg.Context.
//
// Curves are stroked as cardinal splines through every point. Runs of
// non-finite points are skipped. Without a face, text is not drawn but
// FontHeight still reports a usable spacing.
type Canvas struct {
	dc         *gg.Context
	face       text.Face
	ascent     float64
	fontHeight float64
}

// NewCanvas wraps dc. face may be nil.
func NewCanvas(dc *gg.Context, face text.Face) *Canvas {
	c := &Canvas{dc: dc, face: face, fontHeight: fallbackFontHeight}
	if face != nil {
		m := face.Metrics()
		c.ascent = m.Ascent
		c.fontHeight = math.Ceil(m.LineHeight())
		dc.SetFont(face)
	}
	return c
}

// Context returns the underlying drawing context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Push implements Surface.
func (c *Canvas) Push() { c.dc.Push() }

// Pop implements Surface.
func (c *Canvas) Pop() { c.dc.Pop() }

// Translate implements Surface.
func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

// Scale implements Surface.
func (c *Canvas) Scale(x, y float64) { c.dc.Scale(x, y) }

// FontHeight implements Surface.
func (c *Canvas) FontHeight() float64 { return c.fontHeight }

// DrawLine implements Surface.
func (c *Canvas) DrawLine(pen Pen, p1, p2 gg.Point) {
	if !isFinite(p1) || !isFinite(p2) {
		return
	}
	c.setPen(pen)
	c.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.stroke("line")
}

// DrawCurve implements Surface.
func (c *Canvas) DrawCurve(pen Pen, pts []gg.Point) {
	c.setPen(pen)
	for _, run := range FiniteRuns(pts) {
		segs := CardinalToBezier(run, DefaultTension)
		if len(segs) == 0 {
			continue
		}
		c.dc.MoveTo(segs[0].P0.X, segs[0].P0.Y)
		for _, s := range segs {
			c.dc.CubicTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
		}
	}
	c.stroke("curve")
}

// DrawText implements Surface.
func (c *Canvas) DrawText(s string, brush gg.RGBA, at gg.Point) {
	if c.face == nil {
		return
	}
	c.dc.SetRGBA(brush.R, brush.G, brush.B, brush.A)
	c.dc.DrawString(s, at.X, at.Y+c.ascent)
}

func (c *Canvas) setPen(pen Pen) {
	c.dc.SetRGBA(pen.Color.R, pen.Color.G, pen.Color.B, pen.Color.A)
	c.dc.SetLineWidth(pen.Width)
}

func (c *Canvas) stroke(what string) {
	if err := c.dc.Stroke(); err != nil {
		Logger().Warn("binet: stroke failed", "shape", what, "err", err)
	}
}
