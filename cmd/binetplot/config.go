package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	binet "github.com/gogpu/gg-binet"
)

// Config holds the command-line configuration.
type Config struct {
	Output        string
	Width         int
	Height        int
	ZoomX         float64
	ZoomY         float64
	OffsetX       float64
	OffsetY       float64
	Max           float64
	Step          float64
	LineWidth     float64
	Keys          string
	LegacyZoomOut bool
}

func defaultConfig() Config {
	s := binet.DefaultViewState()
	d := binet.DefaultDomain()
	return Config{
		Output:    "binet.png",
		Width:     800,
		Height:    600,
		ZoomX:     s.ZoomX,
		ZoomY:     s.ZoomY,
		OffsetX:   s.Offset.X,
		OffsetY:   s.Offset.Y,
		Max:       d.Max,
		Step:      d.Step,
		LineWidth: 1,
	}
}

func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output PNG file")
	fs.IntVar(&c.Width, "width", c.Width, "image width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "image height in pixels")
	fs.Float64Var(&c.ZoomX, "zoom-x", c.ZoomX, "horizontal pixels per unit")
	fs.Float64Var(&c.ZoomY, "zoom-y", c.ZoomY, "vertical pixels per unit")
	fs.Float64Var(&c.OffsetX, "offset-x", c.OffsetX, "horizontal origin offset from the center, in pixels")
	fs.Float64Var(&c.OffsetY, "offset-y", c.OffsetY, "vertical origin offset from the center, in pixels")
	fs.Float64Var(&c.Max, "max", c.Max, "largest sampled exponent (exclusive)")
	fs.Float64Var(&c.Step, "step", c.Step, "distance between sampled exponents")
	fs.Float64Var(&c.LineWidth, "line-width", c.LineWidth, "pen width")
	fs.StringVar(&c.Keys, "keys", c.Keys, `keys applied before rendering, e.g. "++>>" or "in,up,left"`)
	fs.BoolVar(&c.LegacyZoomOut, "legacy-zoom-out", c.LegacyZoomOut, "zoom out only horizontally, twice (legacy behavior)")
}

func (c Config) plotter() (*binet.Plotter, error) {
	mode := binet.ZoomOutSymmetric
	if c.LegacyZoomOut {
		mode = binet.ZoomOutLegacy
	}
	p, err := binet.NewPlotter(
		binet.WithDomain(binet.Domain{Max: c.Max, Step: c.Step}),
		binet.WithZoomOutMode(mode),
		binet.WithLineWidth(c.LineWidth),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return p, nil
}

// viewState returns the initial view with the --keys script applied.
func (c Config) viewState(mode binet.ZoomOutMode) (binet.ViewState, error) {
	s := binet.ViewState{ZoomX: c.ZoomX, ZoomY: c.ZoomY, Offset: gg.Pt(c.OffsetX, c.OffsetY)}
	if !s.Valid() {
		return s, fmt.Errorf("invalid configuration: %w: %v x %v", binet.ErrInvalidZoom, c.ZoomX, c.ZoomY)
	}
	keys, err := binet.ParseKeys(c.Keys)
	if err != nil {
		return s, fmt.Errorf("invalid --keys: %w", err)
	}
	for _, k := range keys {
		s = binet.HandleKey(k, s, mode)
	}
	return s, nil
}
