package binet

import "github.com/gogpu/gg"

// DrawAxes draws the two axis lines through the model origin, each spanning
// the whole viewport. The surface is translated to the origin and flipped so
// model Y grows upward; the previous transform is restored on return.
func DrawAxes(s Surface, pen Pen, state ViewState, vp Viewport) {
	o := state.Origin(vp.Center())
	s.Push()
	defer s.Pop()
	s.Translate(o.X, o.Y)
	s.Scale(1, -1)

	off := state.Offset
	s.DrawLine(pen,
		gg.Pt(-vp.Width/2-off.X, 0),
		gg.Pt(vp.Width/2-off.X, 0))
	s.DrawLine(pen,
		gg.Pt(0, vp.Height/2+off.Y),
		gg.Pt(0, -vp.Height/2+off.Y))
}
