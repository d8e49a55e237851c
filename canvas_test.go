package binet

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-binet/internal/font"
)

func TestCanvasFontHeight(t *testing.T) {
	dc := gg.NewContext(32, 32)
	defer func() { _ = dc.Close() }()

	if got := NewCanvas(dc, nil).FontHeight(); got != fallbackFontHeight {
		t.Errorf("FontHeight() without face = %v, want %v", got, fallbackFontHeight)
	}

	face, err := font.Default()
	if err != nil {
		t.Fatal(err)
	}
	got := NewCanvas(dc, face).FontHeight()
	if got != math.Ceil(face.Metrics().LineHeight()) {
		t.Errorf("FontHeight() = %v, want ceil(LineHeight)", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.Black)

	c := NewCanvas(dc, nil)
	c.DrawLine(Pen{Color: gg.White, Width: 4}, gg.Pt(0, 20), gg.Pt(40, 20))

	if r, _, _, _ := dc.Image().At(20, 20).RGBA(); r < 0x8000 {
		t.Errorf("pixel on line has red %#x, want bright", r)
	}
	if r, _, _, _ := dc.Image().At(20, 5).RGBA(); r > 0x1000 {
		t.Errorf("pixel off line has red %#x, want dark", r)
	}
}

func TestCanvasTransformStack(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.Black)

	c := NewCanvas(dc, nil)
	c.Push()
	c.Translate(20, 20)
	c.Scale(1, -1)
	// Model y=10 lands on device y=10.
	c.DrawLine(Pen{Color: gg.White, Width: 4}, gg.Pt(-20, 10), gg.Pt(20, 10))
	c.Pop()

	if r, _, _, _ := dc.Image().At(20, 10).RGBA(); r < 0x8000 {
		t.Errorf("flipped line missing at y=10, red %#x", r)
	}
	if r, _, _, _ := dc.Image().At(20, 30).RGBA(); r > 0x1000 {
		t.Errorf("line drawn unflipped at y=30, red %#x", r)
	}
}

func TestCanvasDrawCurveSkipsNonFinite(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer func() { _ = dc.Close() }()

	c := NewCanvas(dc, nil)
	pts := []gg.Point{
		gg.Pt(0, 0), gg.Pt(10, 10), gg.Pt(math.NaN(), 5),
		gg.Pt(20, 20), gg.Pt(math.Inf(-1), 0), gg.Pt(30, 30), gg.Pt(39, 39),
	}
	// Must not panic or hand NaN to the rasterizer.
	c.DrawCurve(Pen{Color: gg.White, Width: 1}, pts)
	c.DrawCurve(Pen{Color: gg.White, Width: 1}, nil)
	c.DrawLine(Pen{Color: gg.White, Width: 1}, gg.Pt(math.NaN(), 0), gg.Pt(1, 1))
}

func TestCanvasDrawTextWithoutFace(t *testing.T) {
	dc := gg.NewContext(20, 20)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.Black)

	NewCanvas(dc, nil).DrawText("12", gg.White, gg.Pt(2, 2))
	if r, _, _, _ := dc.Image().At(5, 8).RGBA(); r != 0 {
		t.Errorf("text drawn without a face, red %#x", r)
	}
}
