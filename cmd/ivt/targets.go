package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"omibyte.io/cortexm/targets"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List known targets grouped by cpu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byCpu := map[string]targets.Targets{}
			for _, target := range targets.All() {
				byCpu[target.Cpu] = append(byCpu[target.Cpu], target)
			}

			cpus := maps.Keys(byCpu)
			slices.Sort(cpus)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, cpu := range cpus {
				fmt.Fprintf(w, "%s\n", cpu)
				for _, target := range byCpu[cpu] {
					fmt.Fprintf(w, "  %s\t%d irqs\t%v\t%s\n",
						target.Series, target.Interrupts, target.Frequency.Hertz(), strings.Join(target.Chips, ", "))
				}
			}
			return w.Flush()
		},
	}
}
