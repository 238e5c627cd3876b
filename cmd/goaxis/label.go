package main

import (
	"fmt"

	"github.com/philipparndt/goaxis/pkg/axis"
	"github.com/spf13/cobra"
)

func newLabelCmd(a *app) *cobra.Command {
	var (
		count  int
		style  string
		start  int
		custom string
	)

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Print axis numbers in a numbering style",
		Long: `Print the first N axis numbers. Styles: 1,2,3  01,02,03  001,002,003
A,B,C  a,b,c  I,II,III  L0,L1,L2 (or numeric, alpha, roman, ...).
Defaults come from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			numbering, err := a.cfg.Numbering()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("style") {
				if numbering.Style, err = axis.ParseStyle(style); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("start") {
				numbering.StartNumber = start
			}
			numbering.Custom = custom

			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			for _, l := range numbering.Labels(count) {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of labels to print")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Numbering style")
	cmd.Flags().IntVar(&start, "start", 1, "Number of the first axis")
	cmd.Flags().StringVar(&custom, "custom", "", "Custom text used for every axis")

	return cmd
}
