package binet

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/gg-binet/internal/font"
)

// Frame summarizes one rendered frame.
type Frame struct {
	Viewport Viewport
	State    ViewState

	// Points is the number of samples per branch.
	Points int

	// XTicks and YTicks count the emitted ticks per axis.
	XTicks, YTicks int
}

// Plotter renders frames of the Binet plot.
//
// A Plotter holds only immutable configuration; the view state is passed to
// each call, so one Plotter may serve any number of views.
type Plotter struct {
	sampler *Sampler
	mode    ZoomOutMode
	theme   Theme
	width   float64
	face    text.Face
}

// NewPlotter creates a Plotter.
func NewPlotter(opts ...Option) (*Plotter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := NewSampler(o.domain)
	if err != nil {
		return nil, err
	}
	return &Plotter{
		sampler: s,
		mode:    o.zoomOutMode,
		theme:   o.theme,
		width:   o.lineWidth,
		face:    o.face,
	}, nil
}

// MustNewPlotter is like NewPlotter but panics on error.
func MustNewPlotter(opts ...Option) *Plotter {
	p, err := NewPlotter(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Domain returns the sampled exponent range.
func (p *Plotter) Domain() Domain {
	return p.sampler.Domain()
}

// ZoomOutMode returns the configured zoom-out behavior.
func (p *Plotter) ZoomOutMode() ZoomOutMode {
	return p.mode
}

// NewController returns a Controller using the plotter's zoom-out mode.
func (p *Plotter) NewController(state ViewState, redraw func()) *Controller {
	return NewController(state, p.mode, redraw)
}

// Render draws one frame onto s: axes first, then the negative and
// positive branches, then ticks and labels on top.
func (p *Plotter) Render(s Surface, vp Viewport, state ViewState) Frame {
	DrawAxes(s, p.pen(p.theme.Axes), state, vp)

	curves := p.sampler.Sample(state, vp)
	s.DrawCurve(p.pen(p.theme.Positive), curves.Positive)
	s.DrawCurve(p.pen(p.theme.Negative), curves.Negative)

	f := Frame{Viewport: vp, State: state, Points: len(curves.Positive)}
	for _, t := range DrawTicks(s, p.pen(p.theme.Ticks), p.theme.Labels, state, vp) {
		if t.Axis == AxisX {
			f.XTicks++
		} else {
			f.YTicks++
		}
	}

	Logger().Debug("binet: frame rendered",
		"width", vp.Width, "height", vp.Height,
		"zoom_x", state.ZoomX, "zoom_y", state.ZoomY,
		"offset_x", state.Offset.X, "offset_y", state.Offset.Y,
		"points", f.Points, "x_ticks", f.XTicks, "y_ticks", f.YTicks)
	return f
}

// RenderImage renders a width×height frame into a new gg.Context cleared to
// the background color. The caller owns the returned context.
func (p *Plotter) RenderImage(state ViewState, width, height int) (*gg.Context, Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, Frame{}, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	if !state.Valid() {
		return nil, Frame{}, fmt.Errorf("%w: %vx%v", ErrInvalidZoom, state.ZoomX, state.ZoomY)
	}
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(p.theme.Background)

	c := NewCanvas(dc, p.labelFace())
	f := p.Render(c, Viewport{Width: float64(width), Height: float64(height)}, state)
	return dc, f, nil
}

// WritePNG renders a frame and encodes it as PNG to w.
func (p *Plotter) WritePNG(w io.Writer, state ViewState, width, height int) (Frame, error) {
	dc, f, err := p.RenderImage(state, width, height)
	if err != nil {
		return f, err
	}
	defer func() { _ = dc.Close() }()
	if err := dc.EncodePNG(w); err != nil {
		return f, fmt.Errorf("binet: encode png: %w", err)
	}
	return f, nil
}

// SavePNG renders a frame to the PNG file at path, replacing it. Nothing is
// written when the frame cannot be rendered.
func (p *Plotter) SavePNG(path string, state ViewState, width, height int) (f Frame, err error) {
	dc, f, err := p.RenderImage(state, width, height)
	if err != nil {
		return f, err
	}
	defer func() { _ = dc.Close() }()

	file, err := os.Create(path)
	if err != nil {
		return f, fmt.Errorf("binet: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("binet: close %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(file)
	if err = dc.EncodePNG(bw); err != nil {
		return f, fmt.Errorf("binet: encode png: %w", err)
	}
	if err = bw.Flush(); err != nil {
		return f, fmt.Errorf("binet: write %s: %w", path, err)
	}
	return f, nil
}

func (p *Plotter) pen(c gg.RGBA) Pen {
	return Pen{Color: c, Width: p.width}
}

func (p *Plotter) labelFace() text.Face {
	if p.face != nil {
		return p.face
	}
	face, err := font.Default()
	if err != nil {
		Logger().Warn("binet: label font unavailable, drawing without labels", "err", err)
		return nil
	}
	return face
}
