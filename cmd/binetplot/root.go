package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	binet "github.com/gogpu/gg-binet"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "binetplot",
		Short: "Plot Binet's formula for a continuous exponent",
		Long: `binetplot draws F(n) = (φⁿ − (−1/φ)ⁿ)/√5 over the complex plane for
real n: one curve for positive exponents, one for negative ones, on a
zoomable and pannable grid.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd(), newInteractiveCmd(), newVersionCmd())
	return root
}

func setupLogging(w io.Writer, verbose bool) {
	if !verbose {
		binet.SetLogger(nil)
		return
	}
	binet.SetLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.TimeOnly,
	})))
}

func printFrame(w io.Writer, path string, f binet.Frame) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "wrote %s (%dx%d, %d points per branch, %d x ticks, %d y ticks)\n",
		path, int(f.Viewport.Width), int(f.Viewport.Height), f.Points, f.XTicks, f.YTicks)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("binetplot " + binet.Version)
		},
	}
}
