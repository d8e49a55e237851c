package binet

import "github.com/gogpu/gg"

// Pen describes how lines and curves are stroked.
type Pen struct {
	Color gg.RGBA
	Width float64
}

// Surface is the drawing target a frame is rendered onto.
//
// Coordinates are device pixels transformed by the current matrix, which
// Push/Pop save and restore and Translate/Scale post-multiply. A negative
// scale flips an axis.
//
// DrawText positions the top-left corner of the text box at the given
// point. FontHeight is the line height of the label font in pixels.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)

	DrawLine(pen Pen, p1, p2 gg.Point)
	DrawCurve(pen Pen, pts []gg.Point)
	DrawText(s string, brush gg.RGBA, at gg.Point)
	FontHeight() float64
}
