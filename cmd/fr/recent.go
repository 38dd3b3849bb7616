package fr

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var (
	recentFlags   scanFlags
	recentMinutes int
)

func init() {
	cmd := &cobra.Command{
		Use:   "recent [path]",
		Short: "Find recently modified files (useful for detecting changes)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &recentFlags, func(s scanSettings) predicate.Predicate {
				minutes := recentMinutes
				if !cmd.Flags().Changed("minutes") && s.windowMinutes > 0 {
					minutes = s.windowMinutes
				}
				return predicate.Recent{Window: time.Duration(minutes) * time.Minute}
			})
		},
	}
	addScanFlags(cmd, &recentFlags)
	cmd.Flags().IntVarP(&recentMinutes, "minutes", "t", 60, "time window in minutes")
	rootCmd.AddCommand(cmd)
}
