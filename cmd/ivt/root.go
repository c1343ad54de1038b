package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ivt",
		Short:         "Cortex-M vector table tool",
		Long:          "Inspect relocated vector table layouts and SysTick reload values for known Cortex-M targets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newTargetsCmd(),
		newLayoutCmd(),
		newReloadCmd(),
	)
	return rootCmd
}
