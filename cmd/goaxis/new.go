package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		axes     int
		distance float64
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create a definition file with evenly spaced axes",
		Long:  "Write a YAML or TOML definition (chosen by extension) with parallel axes at a fixed spacing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := axisfile.FormatFromPath(path)
			if err != nil {
				return err
			}
			if axes < 1 {
				return fmt.Errorf("axes must be at least 1, got %d", axes)
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			distances := slices.Repeat([]float64{distance}, axes)
			distances[0] = 0
			length := a.cfg.Axis.Length
			doc := &axisfile.Document{
				Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
				Distances: distances,
				Angles:    make([]float64, axes),
				Length:    &length,
				Numbering: axisfile.NumberingSpec{Style: a.cfg.Axis.Numbering, Start: a.cfg.Axis.StartNumber},
				Bubbles:   axisfile.BubbleSpec{Position: a.cfg.Axis.BubblePosition},
				DrawStyle: a.cfg.Axis.DrawStyle,
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := axisfile.Encode(file, doc, format); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d axes\n", path, axes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&axes, "axes", "n", 5, "Number of axes")
	cmd.Flags().Float64VarP(&distance, "distance", "d", 5000, "Spacing between axes in mm")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
