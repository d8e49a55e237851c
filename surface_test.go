package binet

import "github.com/gogpu/gg"

// recorder is a Surface that records draw calls in device space.
type recorder struct {
	fontHeight float64
	m          gg.Matrix
	stack      []gg.Matrix

	lines  []recordedLine
	curves []recordedCurve
	texts  []recordedText
	ops    []string
}

type recordedLine struct {
	pen    Pen
	p1, p2 gg.Point
}

type recordedCurve struct {
	pen Pen
	pts []gg.Point
}

type recordedText struct {
	s  string
	at gg.Point
}

func newRecorder(fontHeight float64) *recorder {
	return &recorder{fontHeight: fontHeight, m: gg.Identity()}
}

func (r *recorder) Push() {
	r.stack = append(r.stack, r.m)
}

func (r *recorder) Pop() {
	r.m = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) { r.m = r.m.Multiply(gg.Translate(x, y)) }
func (r *recorder) Scale(x, y float64)     { r.m = r.m.Multiply(gg.Scale(x, y)) }
func (r *recorder) FontHeight() float64    { return r.fontHeight }

func (r *recorder) DrawLine(pen Pen, p1, p2 gg.Point) {
	r.lines = append(r.lines, recordedLine{pen, r.m.TransformPoint(p1), r.m.TransformPoint(p2)})
	r.ops = append(r.ops, "line")
}

func (r *recorder) DrawCurve(pen Pen, pts []gg.Point) {
	dev := make([]gg.Point, len(pts))
	for i, p := range pts {
		dev[i] = r.m.TransformPoint(p)
	}
	r.curves = append(r.curves, recordedCurve{pen, dev})
	r.ops = append(r.ops, "curve")
}

func (r *recorder) DrawText(s string, _ gg.RGBA, at gg.Point) {
	r.texts = append(r.texts, recordedText{s, r.m.TransformPoint(at)})
	r.ops = append(r.ops, "text")
}
