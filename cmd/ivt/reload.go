package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"omibyte.io/cortexm/peripheral"
	"omibyte.io/cortexm/systick"
	"omibyte.io/cortexm/targets"
)

func newReloadCmd() *cobra.Command {
	var opts struct {
		frequency hertzValue
		chip      string
		delay     time.Duration
	}

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Compute the SysTick reload value for a delay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			frequency := peripheral.Hertz(opts.frequency)
			if opts.chip != "" {
				target, err := targets.All().Find(opts.chip)
				if err != nil {
					return err
				}
				if frequency == 0 {
					frequency = target.Frequency.Hertz()
				}
			}
			if frequency == 0 {
				return errors.New("either --frequency or --chip is required")
			}

			out := cmd.OutOrStdout()
			reload, err := systick.Reload(frequency, opts.delay)
			if err != nil {
				fmt.Fprintf(out, "longest delay at %v: %v\n", frequency, systick.MaxDelay(frequency))
				return err
			}

			fmt.Fprintf(out, "%v at %v: reload %d (%#06x)\n", opts.delay, frequency, reload, reload)
			return nil
		},
	}

	cmd.Flags().VarP(&opts.frequency, "frequency", "f", "clock driving SysTick, e.g. 48MHz")
	cmd.Flags().StringVarP(&opts.chip, "chip", "c", "", "take the frequency from a chip or series")
	cmd.Flags().DurationVarP(&opts.delay, "delay", "d", time.Millisecond, "delay to schedule")
	return cmd
}
