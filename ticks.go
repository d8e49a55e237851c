package binet

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// Tick geometry in device pixels, relative to the model origin.
const (
	// TickHalfLength is half the length of a tick mark.
	TickHalfLength = 5.0

	// maxTickIterations bounds one layout pass. Valid views never get
	// close; it only guards against zero or NaN zoom.
	maxTickIterations = 1 << 16
)

// Axis identifies a plot axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Label is one tick label.
type Label struct {
	Text string
	// At is the top-left corner of the label box.
	At gg.Point
}

// Tick is an emitted graduation pair at +Position and -Position along an
// axis, with the integer labels Value and -Value.
type Tick struct {
	Axis     Axis
	Position float64
	Value    int

	// Marks are the two tick lines, at +Position and -Position.
	Marks [2][2]gg.Point

	// Labels are Value at +Position and -Value at -Position.
	Labels [2]Label
}

// XLabelCorrection approximates the half-width of the negated X label:
// its digit count, sign included, times half the font height. It is
// added to the last emitted position so the next label keeps clear of it.
func XLabelCorrection(v int, fontHeight float64) float64 {
	return float64(len(strconv.Itoa(-v))) * fontHeight / 2
}

// YLabelCorrection is the spacing reserved after a Y label. Y labels are
// stacked vertically, so one font height is enough.
func YLabelCorrection(fontHeight float64) float64 {
	return fontHeight
}

// LayoutXTicks places ticks along the X axis.
//
// Candidates sit at every multiple of ZoomX while they stay within the
// viewport width plus the horizontal pan. A candidate is emitted only when
// it is more than fontHeight past the previous label. Values count every
// candidate, skipped or not, so a label always shows its true distance from
// the origin in model units.
//
// Coordinates are relative to the origin with device Y pointing down.
func LayoutXTicks(state ViewState, vp Viewport, fontHeight float64) []Tick {
	var ticks []Tick
	last := 0.0
	v := 1
	for pos := state.ZoomX; pos-math.Abs(state.Offset.X) < vp.Width && v <= maxTickIterations; pos += state.ZoomX {
		if pos-last > fontHeight {
			ticks = append(ticks, Tick{
				Axis:     AxisX,
				Position: pos,
				Value:    v,
				Marks: [2][2]gg.Point{
					{gg.Pt(pos, TickHalfLength), gg.Pt(pos, -TickHalfLength)},
					{gg.Pt(-pos, TickHalfLength), gg.Pt(-pos, -TickHalfLength)},
				},
				Labels: [2]Label{
					{Text: strconv.Itoa(v), At: gg.Pt(pos-4, fontHeight-5)},
					{Text: strconv.Itoa(-v), At: gg.Pt(-pos-8, fontHeight-5)},
				},
			})
			last = pos + XLabelCorrection(v, fontHeight)
		}
		v++
	}
	return ticks
}

// LayoutYTicks places ticks along the Y axis with the same rules as
// LayoutXTicks, bounded by the viewport height plus the vertical pan.
// Positive values are drawn above the origin.
func LayoutYTicks(state ViewState, vp Viewport, fontHeight float64) []Tick {
	// Labels are centered on the mark using whole pixels.
	half := math.Floor(fontHeight / 2)
	var ticks []Tick
	last := 0.0
	v := 1
	for pos := state.ZoomY; pos-math.Abs(state.Offset.Y) < vp.Height && v <= maxTickIterations; pos += state.ZoomY {
		if pos-last > fontHeight {
			ticks = append(ticks, Tick{
				Axis:     AxisY,
				Position: pos,
				Value:    v,
				Marks: [2][2]gg.Point{
					{gg.Pt(-TickHalfLength, -pos), gg.Pt(TickHalfLength, -pos)},
					{gg.Pt(-TickHalfLength, pos), gg.Pt(TickHalfLength, pos)},
				},
				Labels: [2]Label{
					{Text: strconv.Itoa(v), At: gg.Pt(8, -pos-half)},
					{Text: strconv.Itoa(-v), At: gg.Pt(8, pos-half)},
				},
			})
			last = pos + YLabelCorrection(fontHeight)
		}
		v++
	}
	return ticks
}

// DrawTicks lays out and draws the ticks of both axes with the surface
// translated to the model origin. It returns the emitted ticks.
func DrawTicks(s Surface, pen Pen, labels gg.RGBA, state ViewState, vp Viewport) []Tick {
	fh := s.FontHeight()
	ticks := append(LayoutXTicks(state, vp, fh), LayoutYTicks(state, vp, fh)...)

	o := state.Origin(vp.Center())
	s.Push()
	defer s.Pop()
	s.Translate(o.X, o.Y)
	for _, t := range ticks {
		for _, m := range t.Marks {
			s.DrawLine(pen, m[0], m[1])
		}
		for _, l := range t.Labels {
			s.DrawText(l.Text, labels, l.At)
		}
	}
	return ticks
}
