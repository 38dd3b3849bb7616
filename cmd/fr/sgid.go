package fr

import (
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var sgidFlags scanFlags

func init() {
	cmd := &cobra.Command{
		Use:   "sgid [path]",
		Short: "Find setgid binaries (run as file group)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &sgidFlags, func(scanSettings) predicate.Predicate {
				return predicate.Sgid{}
			})
		},
	}
	addScanFlags(cmd, &sgidFlags)
	rootCmd.AddCommand(cmd)
}
