package main

import (
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Example: `  # Default view
  binetplot render

  # Zoom in twice and pan right
  binetplot render -o zoomed.png --keys "++>>"`,
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
			f, err := p.SavePNG(cfg.Output, state, cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			printFrame(cmd.OutOrStdout(), cfg.Output, f)
			return nil
		},
	}
	cfg.bindFlags(cmd.Flags())
	return cmd
}
