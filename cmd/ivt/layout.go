package main

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/targets"
)

// Layout describes the vector table Initialize builds for a target.
type Layout struct {
	Series    string  `yaml:"series"`
	Cpu       string  `yaml:"cpu"`
	MaxIRQ    int     `yaml:"maxIRQ"`
	Slots     int     `yaml:"slots"`
	Bytes     int     `yaml:"bytes"`
	Alignment int     `yaml:"alignment"`
	Entries   []Entry `yaml:"entries"`
}

type Entry struct {
	Slot    int    `yaml:"slot"`
	Offset  string `yaml:"offset"`
	IRQ     int    `yaml:"irq"`
	Name    string `yaml:"name"`
	Handler string `yaml:"handler"`
}

func newLayout(target targets.TargetInfo) Layout {
	layout := Layout{
		Series:    target.Series,
		Cpu:       target.Cpu,
		MaxIRQ:    int(target.MaxIRQ()),
		Slots:     target.VectorSlots(),
		Bytes:     target.TableBytes(),
		Alignment: target.TableAlignment(),
	}

	for slot := 0; slot < layout.Slots; slot++ {
		irq := interrupt.IRQ(slot - interrupt.CoreInterrupts)
		layout.Entries = append(layout.Entries, Entry{
			Slot:    slot,
			Offset:  fmt.Sprintf("%#04x", slot*targets.SlotSize),
			IRQ:     int(irq),
			Name:    irq.String(),
			Handler: handlerName(irq),
		})
	}
	return layout
}

func handlerName(irq interrupt.IRQ) string {
	switch irq {
	case interrupt.TopOfStack:
		return "(boot stack top)"
	case interrupt.Reset:
		return "(boot reset)"
	}

	pc := reflect.ValueOf(interrupt.InitialHandler(irq)).Pointer()
	name := runtime.FuncForPC(pc).Name()
	return name[strings.LastIndex(name, "/")+1:]
}

func newLayoutCmd() *cobra.Command {
	var opts struct {
		chip   string
		output string
	}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the vector table layout for a chip",
		Long:  "Print every slot of the vector table the interrupt controller installs for a chip, with the handler each slot starts with.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targets.All().Find(opts.chip)
			if err != nil {
				return err
			}
			layout := newLayout(target)

			switch opts.output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(layout); err != nil {
					return err
				}
				return enc.Close()
			case "text":
				return writeLayout(cmd, layout)
			}
			return fmt.Errorf("unknown output format %q", opts.output)
		},
	}

	cmd.Flags().StringVarP(&opts.chip, "chip", "c", "", "chip or series name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format (=text, =yaml)")
	cmd.MarkFlagRequired("chip")
	return cmd
}

func writeLayout(cmd *cobra.Command, layout Layout) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s): %d slots, %d bytes, aligned to %d bytes\n",
		layout.Series, layout.Cpu, layout.Slots, layout.Bytes, layout.Alignment)
	fmt.Fprintf(out, "InitializeFor(%d)\n\n", layout.MaxIRQ)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tOFFSET\tIRQ\tNAME\tHANDLER")
	for _, e := range layout.Entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", e.Slot, e.Offset, e.IRQ, e.Name, e.Handler)
	}
	return w.Flush()
}
