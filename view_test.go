package binet

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func nearPt(a, b gg.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestDefaultViewState(t *testing.T) {
	s := DefaultViewState()
	want := ViewState{ZoomX: 50, ZoomY: 50, Offset: gg.Pt(-250, 0)}
	if s != want {
		t.Errorf("DefaultViewState() = %+v, want %+v", s, want)
	}
	if !s.Valid() {
		t.Error("DefaultViewState().Valid() = false")
	}
}

func TestZoomRoundTrip(t *testing.T) {
	s := DefaultViewState()
	got := s.ZoomIn().ZoomOut(ZoomOutSymmetric)
	if !near(got.ZoomX, s.ZoomX) || !near(got.ZoomY, s.ZoomY) {
		t.Errorf("ZoomIn().ZoomOut() = %v x %v, want %v x %v", got.ZoomX, got.ZoomY, s.ZoomX, s.ZoomY)
	}
	if got.Offset != s.Offset {
		t.Errorf("zoom changed offset to %v", got.Offset)
	}
}

func TestZoomOutLegacy(t *testing.T) {
	s := DefaultViewState().ZoomOut(ZoomOutLegacy)
	if !near(s.ZoomX, 50/1.44) {
		t.Errorf("legacy ZoomOut ZoomX = %v, want %v", s.ZoomX, 50/1.44)
	}
	if s.ZoomY != 50 {
		t.Errorf("legacy ZoomOut ZoomY = %v, want 50", s.ZoomY)
	}

	// The legacy path does not round-trip.
	r := DefaultViewState().ZoomIn().ZoomOut(ZoomOutLegacy)
	if near(r.ZoomX, 50) || near(r.ZoomY, 50) {
		t.Errorf("legacy round trip = %v x %v, want asymmetric", r.ZoomX, r.ZoomY)
	}
}

func TestPan(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ViewState) ViewState
		want gg.Point
	}{
		{"up", ViewState.PanUp, gg.Pt(-250, 10)},
		{"down", ViewState.PanDown, gg.Pt(-250, -10)},
		{"left", ViewState.PanLeft, gg.Pt(-240, 0)},
		{"right", ViewState.PanRight, gg.Pt(-260, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(DefaultViewState())
			if got.Offset != tt.want {
				t.Errorf("Offset = %v, want %v", got.Offset, tt.want)
			}
			if got.ZoomX != 50 || got.ZoomY != 50 {
				t.Errorf("pan changed zoom to %v x %v", got.ZoomX, got.ZoomY)
			}
		})
	}
}

func TestToScreen(t *testing.T) {
	s := DefaultViewState()
	center := Viewport{Width: 800, Height: 600}.Center()
	tests := []struct {
		model, want gg.Point
	}{
		{gg.Pt(0, 0), gg.Pt(150, 300)},
		{gg.Pt(50, 0), gg.Pt(200, 300)},
		{gg.Pt(0, 50), gg.Pt(150, 250)},
		{gg.Pt(-20, -30), gg.Pt(130, 330)},
	}
	for _, tt := range tests {
		if got := s.ToScreen(tt.model, center); !nearPt(got, tt.want) {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.model, got, tt.want)
		}
	}
}

func TestToScreenBijective(t *testing.T) {
	center := gg.Pt(400, 300)
	states := []ViewState{
		DefaultViewState(),
		{ZoomX: 3, ZoomY: 700, Offset: gg.Pt(123.5, -77)},
		DefaultViewState().ZoomIn().PanUp().PanLeft(),
	}
	points := []gg.Point{gg.Pt(0, 0), gg.Pt(1e4, -3), gg.Pt(-17.25, 8.5)}
	for _, s := range states {
		m := s.Matrix(center)
		for _, p := range points {
			d := s.ToScreen(p, center)
			if got := s.ToScreen(s.ToModel(d, center), center); !nearPt(got, d) {
				t.Errorf("ToScreen(ToModel(%v)) = %v", d, got)
			}
			if got := s.ToModel(d, center); !nearPt(got, p) {
				t.Errorf("ToModel(ToScreen(%v)) = %v", p, got)
			}
			if got := m.TransformPoint(p); !nearPt(got, d) {
				t.Errorf("Matrix().TransformPoint(%v) = %v, want %v", p, got, d)
			}
			if got := m.Invert().TransformPoint(d); !nearPt(got, p) {
				t.Errorf("Matrix().Invert() maps %v to %v, want %v", d, got, p)
			}
		}
	}
}

func TestViewStateValid(t *testing.T) {
	tests := []struct {
		name string
		s    ViewState
		want bool
	}{
		{"default", DefaultViewState(), true},
		{"zero x", ViewState{ZoomX: 0, ZoomY: 1}, false},
		{"negative y", ViewState{ZoomX: 1, ZoomY: -1}, false},
		{"nan", ViewState{ZoomX: math.NaN(), ZoomY: 1}, false},
		{"inf", ViewState{ZoomX: 1, ZoomY: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		if got := tt.s.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestZoomOutModeString(t *testing.T) {
	if ZoomOutSymmetric.String() != "symmetric" || ZoomOutLegacy.String() != "legacy" {
		t.Errorf("unexpected names %q %q", ZoomOutSymmetric, ZoomOutLegacy)
	}
}
