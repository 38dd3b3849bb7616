package fr

import (
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var capsFlags scanFlags

func init() {
	cmd := &cobra.Command{
		Use:   "caps [path]",
		Short: "Find files with Linux capabilities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &capsFlags, func(scanSettings) predicate.Predicate {
				return predicate.Caps{}
			})
		},
	}
	addScanFlags(cmd, &capsFlags)
	rootCmd.AddCommand(cmd)
}
