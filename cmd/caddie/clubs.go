package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stitts-dev/caddie/internal/fixtures"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the generic club distance table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		writeDefaults(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}

func writeDefaults(out io.Writer) {
	fmt.Fprintf(out, "%-16s %6s %6s %6s\n", "CLUB", "CARRY", "TOTAL", "DISP")
	for _, c := range fixtures.DefaultClubs() {
		fmt.Fprintf(out, "%-16s %6.0f %6.0f %6.0f\n", c.Club.DisplayName(), c.CarryYards, c.TotalYards, c.DispersionYards)
	}
}
