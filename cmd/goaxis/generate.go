package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/geometry"
	"github.com/philipparndt/goaxis/pkg/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type segmentRow struct {
	Axis   int        `yaml:"axis"`
	Number string     `yaml:"number"`
	Label  string     `yaml:"label,omitempty"`
	Start  [3]float64 `yaml:"start,flow"`
	End    [3]float64 `yaml:"end,flow"`
}

type systemRows struct {
	Name     string       `yaml:"name"`
	Source   string       `yaml:"source"`
	Segments []segmentRow `yaml:"segments"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		local  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "generate [file|pattern]...",
		Short: "Print the generated axis segments",
		Long:  "Generate the segments of one or more axis systems and print them with their bubble numbers.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := a.loadSystems(args)
			if err != nil {
				return err
			}

			rows := make([]systemRows, len(systems))
			for i, sys := range systems {
				rows[i] = buildRows(sys, local)
			}

			switch format {
			case "table":
				for _, r := range rows {
					printTable(cmd.OutOrStdout(), r)
				}
				return nil
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(rows); err != nil {
					return fmt.Errorf("failed to encode segments: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (use table or yaml)", format)
			}
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Print segments in the local frame, ignoring placement")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, yaml)")

	return cmd
}

func buildRows(sys *axisfile.System, local bool) systemRows {
	segments := sys.Segments()
	if local {
		segments = sys.Definition.Segments()
	}
	perAxis := 1
	if sys.Definition.Limited() {
		perAxis = 2
	}
	numbers := sys.Labels()

	result := systemRows{Name: sys.Name, Source: sys.Source}
	for i, s := range segments {
		axisIndex := i / perAxis
		result.Segments = append(result.Segments, segmentRow{
			Axis:   axisIndex,
			Number: numbers[axisIndex],
			Label:  sys.Definition.Label(axisIndex),
			Start:  triple(s.Start),
			End:    triple(s.End),
		})
	}
	return result
}

func triple(v geometry.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func printTable(w io.Writer, r systemRows) {
	fmt.Fprintf(w, "Axis system: %s (%s)\n", r.Name, r.Source)
	if len(r.Segments) == 0 {
		fmt.Fprintln(w, "  no axes to draw")
		return
	}
	fmt.Fprintf(w, "  %-4s %-8s %-32s %-32s %s\n", "Axis", "Number", "Start", "End", "Label")
	for _, s := range r.Segments {
		fmt.Fprintf(w, "  %-4d %-8s %-32s %-32s %s\n",
			s.Axis, s.Number,
			report.FormatVector(geometry.NewVector3(s.Start[0], s.Start[1], s.Start[2])),
			report.FormatVector(geometry.NewVector3(s.End[0], s.End[1], s.End[2])),
			s.Label)
	}
	fmt.Fprintln(w)
}
