package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	binet "github.com/gogpu/gg-binet"
	"github.com/gogpu/gg-binet/internal/term"
)

const interactiveHelp = "+/- zoom, arrows or wasd pan, q quit\r\n"

func newInteractiveCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Drive the view from the keyboard, re-rendering the PNG after each key",
		Long: `interactive puts the terminal in raw mode and rewrites the output PNG
whenever a key changes the view. Keep the file open in an image viewer that
reloads on change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := cfg.plotter()
			if err != nil {
				return err
			}
			state, err := cfg.viewState(p.ZoomOutMode())
			if err != nil {
				return err
			}

			out := cmd.ErrOrStderr()
			repaint := func(s binet.ViewState) error {
				f, err := p.SavePNG(cfg.Output, s, cfg.Width, cfg.Height)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "zoom %.4g x %.4g, offset (%g, %g), %d+%d ticks\r\n",
					s.ZoomX, s.ZoomY, s.Offset.X, s.Offset.Y, f.XTicks, f.YTicks)
				return nil
			}
			if err := repaint(state); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "rendering to %s; %s", cfg.Output, interactiveHelp)

			return term.RunRaw(os.Stdin, &term.Session{
				Control: p.NewController(state, nil),
				Repaint: repaint,
			})
		},
	}
	cfg.bindFlags(cmd.Flags())
	return cmd
}
