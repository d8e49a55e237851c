package binet

import (
	"math"

	"github.com/gogpu/gg"
)

// View defaults and step sizes.
const (
	// DefaultZoom is the initial pixels-per-unit scale on both axes.
	DefaultZoom = 50.0

	// ZoomFactor is applied by one zoom-in or zoom-out step.
	ZoomFactor = 1.2

	// PanStep is the offset change, in device pixels, of one pan step.
	PanStep = 10.0
)

// ZoomOutMode selects how ZoomOut scales the view.
type ZoomOutMode int

const (
	// ZoomOutSymmetric divides both zoom factors by ZoomFactor, making
	// ZoomOut the exact inverse of ZoomIn.
	ZoomOutSymmetric ZoomOutMode = iota

	// ZoomOutLegacy divides ZoomX twice and leaves ZoomY unchanged.
	ZoomOutLegacy
)

// String returns the mode name.
func (m ZoomOutMode) String() string {
	switch m {
	case ZoomOutSymmetric:
		return "symmetric"
	case ZoomOutLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Viewport is the visible device-space rectangle.
type Viewport struct {
	Width, Height float64
}

// Center returns the middle of the viewport.
func (v Viewport) Center() gg.Point {
	return gg.Pt(v.Width/2, v.Height/2)
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0)
}

// ViewState is the user-controlled pan and zoom.
//
// ZoomX and ZoomY are pixels per model unit and must stay positive.
// Offset shifts the model origin away from the viewport center,
// in device pixels.
type ViewState struct {
	ZoomX, ZoomY float64
	Offset       gg.Point
}

// DefaultViewState returns the startup view: 50 pixels per unit and the
// origin shifted five units to the left.
func DefaultViewState() ViewState {
	return ViewState{
		ZoomX:  DefaultZoom,
		ZoomY:  DefaultZoom,
		Offset: gg.Pt(-DefaultZoom*5, 0),
	}
}

// Valid reports whether both zoom factors are finite and positive.
func (s ViewState) Valid() bool {
	return s.ZoomX > 0 && s.ZoomY > 0 && !math.IsInf(s.ZoomX, 0) && !math.IsInf(s.ZoomY, 0)
}

// ZoomIn magnifies both axes by ZoomFactor.
func (s ViewState) ZoomIn() ViewState {
	s.ZoomX *= ZoomFactor
	s.ZoomY *= ZoomFactor
	return s
}

// ZoomOut shrinks the view according to mode.
func (s ViewState) ZoomOut(mode ZoomOutMode) ViewState {
	if mode == ZoomOutLegacy {
		s.ZoomX /= ZoomFactor
		s.ZoomX /= ZoomFactor
		return s
	}
	s.ZoomX /= ZoomFactor
	s.ZoomY /= ZoomFactor
	return s
}

// PanUp moves the offset down by PanStep, which scrolls the plot content
// down the screen.
func (s ViewState) PanUp() ViewState {
	s.Offset.Y += PanStep
	return s
}

// PanDown is the opposite of PanUp.
func (s ViewState) PanDown() ViewState {
	s.Offset.Y -= PanStep
	return s
}

// PanLeft shifts the offset right by PanStep.
func (s ViewState) PanLeft() ViewState {
	s.Offset.X += PanStep
	return s
}

// PanRight is the opposite of PanLeft.
func (s ViewState) PanRight() ViewState {
	s.Offset.X -= PanStep
	return s
}

// Origin returns the device position of the model origin.
func (s ViewState) Origin(center gg.Point) gg.Point {
	return center.Add(s.Offset)
}

// ToScreen maps a zoomed model point to device space. Model Y grows upward
// and device Y grows downward, so Y is flipped around the origin.
func (s ViewState) ToScreen(p, center gg.Point) gg.Point {
	o := s.Origin(center)
	return gg.Pt(o.X+p.X, o.Y-p.Y)
}

// ToModel is the inverse of ToScreen.
func (s ViewState) ToModel(p, center gg.Point) gg.Point {
	o := s.Origin(center)
	return gg.Pt(p.X-o.X, o.Y-p.Y)
}

// Matrix returns ToScreen as an affine matrix.
func (s ViewState) Matrix(center gg.Point) gg.Matrix {
	o := s.Origin(center)
	return gg.Translate(o.X, o.Y).Multiply(gg.Scale(1, -1))
}
