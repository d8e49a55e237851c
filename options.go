package binet

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Default sampling domain.
const (
	// DefaultMax is the upper bound (exclusive) of sampled exponents.
	DefaultMax = 30.0

	// DefaultStep is the distance between sampled exponents.
	DefaultStep = 0.05
)

// Domain is the sampled exponent range [0, Max) walked at Step.
type Domain struct {
	Max  float64
	Step float64
}

// DefaultDomain returns the startup domain.
func DefaultDomain() Domain {
	return Domain{Max: DefaultMax, Step: DefaultStep}
}

// Validate checks the domain invariants.
func (d Domain) Validate() error {
	if !(d.Step > 0) || math.IsInf(d.Step, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, d.Step)
	}
	if !(d.Max > 0) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMax, d.Max)
	}
	if n := math.Ceil(d.Max / d.Step); !(n <= MaxSamples) {
		return fmt.Errorf("%w: %v/%v exceeds %d", ErrTooManySamples, d.Max, d.Step, MaxSamples)
	}
	return nil
}

// Theme holds the plot colors.
type Theme struct {
	Background gg.RGBA
	Axes       gg.RGBA
	Ticks      gg.RGBA
	Labels     gg.RGBA
	Positive   gg.RGBA
	Negative   gg.RGBA
}

// DefaultTheme is the dark plotter palette. Positive exponents are drawn
// sky blue and negative ones yellow green.
func DefaultTheme() Theme {
	return Theme{
		Background: gg.Hex("#1e1e1e"),
		Axes:       gg.Hex("#696969"), // DimGray
		Ticks:      gg.Hex("#a9a9a9"), // DarkGray
		Labels:     gg.White,
		Positive:   gg.Hex("#00bfff"), // DeepSkyBlue
		Negative:   gg.Hex("#9acd32"), // YellowGreen
	}
}

// Option configures a Plotter during creation.
//
// Example:
//
//	p, err := binet.NewPlotter(
//	    binet.WithDomain(binet.Domain{Max: 20, Step: 0.1}),
//	    binet.WithZoomOutMode(binet.ZoomOutLegacy),
//	)
type Option func(*options)

// options holds optional configuration for Plotter creation.
type options struct {
	domain      Domain
	zoomOutMode ZoomOutMode
	theme       Theme
	lineWidth   float64
	face        text.Face
}

// defaultOptions returns the default plotter options.
func defaultOptions() options {
	return options{
		domain:    DefaultDomain(),
		theme:     DefaultTheme(),
		lineWidth: 1,
	}
}

// WithDomain sets the sampled exponent range.
func WithDomain(d Domain) Option {
	return func(o *options) {
		o.domain = d
	}
}

// WithZoomOutMode selects the ZoomOut behavior used by the Controller.
func WithZoomOutMode(m ZoomOutMode) Option {
	return func(o *options) {
		o.zoomOutMode = m
	}
}

// WithLineWidth sets the pen width for curves, axes and ticks.
// Non-positive widths are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithFontFace sets the face used for tick labels by RenderImage.
// Without a face, labels fall back to the embedded Go Regular font.
func WithFontFace(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}
