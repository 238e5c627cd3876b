package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/report"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var showGrid bool

	cmd := &cobra.Command{
		Use:   "info [file|pattern]...",
		Short: "Display information about axis systems",
		Long:  "Show the axis count, extents, segment lengths and numbering of each axis system.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := a.loadSystems(args)
			if err != nil {
				return err
			}
			for _, sys := range systems {
				printInfo(cmd.OutOrStdout(), sys, showGrid)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showGrid, "grid", "g", false, "List the grid points")

	return cmd
}

func printInfo(w io.Writer, sys *axisfile.System, showGrid bool) {
	result := report.Summarize(sys.Definition, sys.Numbering)

	fmt.Fprintln(w, "Axis System Information")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintf(w, "Name: %s\n", sys.Name)
	fmt.Fprintf(w, "File: %s\n\n", sys.Source)

	fmt.Fprintln(w, "Axes:")
	fmt.Fprintf(w, "  Count: %d\n", result.AxisCount)
	fmt.Fprintf(w, "  Segments: %d\n", result.SegmentCount)
	if result.Limited {
		fmt.Fprintf(w, "  Limited: %s stubs\n", report.FormatMeasurement(sys.Definition.Limit, ""))
	}
	fmt.Fprintf(w, "  Length: %s\n", report.FormatMeasurement(sys.Definition.Length, ""))
	fmt.Fprintf(w, "  Numbering: %s (%s .. %s)\n", sys.Numbering.Style, result.FirstNumber, result.LastNumber)
	fmt.Fprintf(w, "  Bubbles: %s\n", sys.Bubble.Position)
	fmt.Fprintf(w, "  Draw style: %s\n\n", sys.DrawStyle)

	if result.SegmentCount == 0 {
		fmt.Fprintln(w, "Nothing to draw: distances and angles must be non-empty and of equal length.")
		return
	}

	fmt.Fprintln(w, "Bounding Box (local):")
	fmt.Fprintf(w, "  Min: %s\n", report.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", report.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Width (X): %s\n", report.FormatMeasurement(result.Dimensions.X, ""))
	fmt.Fprintf(w, "  Depth (Y): %s\n", report.FormatMeasurement(result.Dimensions.Y, ""))
	fmt.Fprintf(w, "  Span: %s\n\n", report.FormatMeasurement(result.Span, ""))

	fmt.Fprintln(w, "Segment Lengths:")
	fmt.Fprintf(w, "  Minimum: %s\n", report.FormatMeasurement(result.MinSegment, ""))
	fmt.Fprintf(w, "  Maximum: %s (axis %d)\n", report.FormatMeasurement(result.MaxSegment, ""), result.LongestAxis)
	fmt.Fprintf(w, "  Average: %s\n", report.FormatMeasurement(result.AvgSegment, ""))

	if showGrid {
		fmt.Fprintln(w, "\nGrid Points:")
		for i, p := range result.GridPoints {
			fmt.Fprintf(w, "  %d: %s\n", i, report.FormatVector(p))
		}
	}
	fmt.Fprintln(w)
}
