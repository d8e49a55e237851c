package binet

import (
	"math"

	"github.com/gogpu/gg"
)

// PositiveImagScale magnifies the imaginary part of the positive branch.
// For n ≥ 0 the imaginary component stays tiny next to the real part, so
// the extra vertical scale keeps it readable. It is a display-only
// distortion.
const PositiveImagScale = 10.0

// Curves holds the two sampled branches in device space, in exponent order.
type Curves struct {
	// Positive is Binet(n) for n in the domain.
	Positive []gg.Point

	// Negative is Binet(-n) for n in the domain.
	Negative []gg.Point
}

// Sampler evaluates Binet's formula over a fixed exponent domain.
type Sampler struct {
	domain Domain
}

// NewSampler returns a Sampler for d.
func NewSampler(d Domain) (*Sampler, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{domain: d}, nil
}

// Domain returns the sampled exponent range.
func (s *Sampler) Domain() Domain {
	return s.domain
}

// MaxSamples caps the number of points per branch.
const MaxSamples = 1 << 20

// SampleCount returns the number of points per branch for d:
// ceil(Max/Step).
func SampleCount(d Domain) int {
	return int(math.Ceil(d.Max / d.Step))
}

// Exponent returns the ith sampled exponent. Exponents are computed from
// the index so rounding never adds or drops a sample.
func (d Domain) Exponent(i int) float64 {
	return float64(i) * d.Step
}

// ClampPoint caps a zoomed model point so it cannot run far past the right
// and top edges of the viewport: X is limited to Width-Offset.X and Y to
// Height+Offset.Y. Huge magnitudes from exponentiation are flattened instead
// of producing giant polylines. Points are never dropped.
func ClampPoint(p gg.Point, vp Viewport, offset gg.Point) gg.Point {
	return gg.Pt(
		math.Min(p.X, vp.Width-offset.X),
		math.Min(p.Y, vp.Height+offset.Y),
	)
}

// Sample evaluates both branches for the current view. Each branch has
// exactly SampleCount points regardless of the view. Non-finite values are
// kept; the drawing surface skips them.
func (s *Sampler) Sample(state ViewState, vp Viewport) Curves {
	count := SampleCount(s.domain)
	center := vp.Center()
	zyPositive := state.ZoomY * PositiveImagScale

	c := Curves{
		Positive: make([]gg.Point, 0, count),
		Negative: make([]gg.Point, 0, count),
	}
	for i := range count {
		n := s.domain.Exponent(i)

		b := BinetReal(n)
		p := gg.Pt(real(b)*state.ZoomX, imag(b)*zyPositive)
		c.Positive = append(c.Positive, state.ToScreen(ClampPoint(p, vp, state.Offset), center))

		b = BinetReal(-n)
		p = gg.Pt(real(b)*state.ZoomX, imag(b)*state.ZoomY)
		c.Negative = append(c.Negative, state.ToScreen(ClampPoint(p, vp, state.Offset), center))
	}
	return c
}
