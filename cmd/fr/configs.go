package fr

import (
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var configsFlags scanFlags

func init() {
	cmd := &cobra.Command{
		Use:   "configs [path]",
		Short: "Find interesting config files (credentials, keys, etc.)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &configsFlags, func(s scanSettings) predicate.Predicate {
				return predicate.Configs{Extra: s.extraPatterns}
			})
		},
	}
	addScanFlags(cmd, &configsFlags)
	rootCmd.AddCommand(cmd)
}
