// Package binet plots the analytic continuation of the Fibonacci sequence.
//
// # Overview
//
// Binet's formula
//
//	F(n) = (φⁿ − (−1/φ)ⁿ) / √5,  φ = (1+√5)/2
//
// yields the Fibonacci numbers for integer n and extends smoothly to any real
// or complex exponent. For real n the result is complex, so the plot shows
// the real part on the X axis and the imaginary part on the Y axis: one
// curve for n ≥ 0 and one for −n.
//
// # Quick Start
//
//	p := binet.MustNewPlotter()
//	if _, err := p.SavePNG("binet.png", binet.DefaultViewState(), 800, 600); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Each frame is rebuilt from a [ViewState] (zoom and pan) and a [Viewport]:
//   - [Sampler] evaluates [Binet] over the exponent [Domain] and maps the
//     values to device pixels, clamping runaway magnitudes with [ClampPoint].
//   - [DrawAxes] draws the axes through the model origin.
//   - [LayoutXTicks] and [LayoutYTicks] place labeled ticks, skipping those
//     that would overlap the previous label.
//
// Drawing goes through the [Surface] interface; [Canvas] implements it on a
// gg.Context.
//
// # Interaction
//
// [HandleKey] maps zoom and pan keys to a new ViewState. [Controller] wraps
// it for interactive hosts and records repaint requests.
//
// # Coordinate System
//
// Model space has Y up and is measured in pixels after zoom. Device space
// has the origin at the top-left and Y down. [ViewState.ToScreen] maps
// between them.
package binet

// Version is the current version of the module.
const Version = "0.1.0"
