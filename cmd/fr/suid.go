package fr

import (
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var suidFlags scanFlags

func init() {
	cmd := &cobra.Command{
		Use:   "suid [path]",
		Short: "Find setuid binaries (run as file owner)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &suidFlags, func(scanSettings) predicate.Predicate {
				return predicate.Suid{}
			})
		},
	}
	addScanFlags(cmd, &suidFlags)
	rootCmd.AddCommand(cmd)
}
