package main

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/goaxis/internal/logging"
	"github.com/philipparndt/goaxis/pkg/plot"
	"github.com/spf13/cobra"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		output string
		width  int
		height int
		font   string
	)

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render the plan view of an axis system to PNG",
		Long:  "Draw the placed axes and bubbles of an axis system. Bubble numbers and labels need a font file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := a.loadSystems(args)
			if err != nil {
				return err
			}
			sys := systems[0]

			opts := plot.OptionsFromConfig(a.cfg)
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}
			if font != "" {
				opts.FontPath = font
			}
			if output == "" {
				output = sys.Name + ".png"
			}

			if err := plot.SavePNG(sys, opts, output); err != nil {
				return err
			}
			logging.Logger().Info("Wrote plot", slog.String("path", output))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", output, opts.Width, opts.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file (default: <name>.png)")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels")
	cmd.Flags().StringVar(&font, "font", "", "TrueType/OpenType font for numbers and labels")

	return cmd
}
