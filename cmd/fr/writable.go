package fr

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var (
	writableFlags     scanFlags
	writableDirsOnly  bool
	writableFilesOnly bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "writable [path]",
		Short: "Find world-writable files and directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if writableDirsOnly && writableFilesOnly {
				return errors.New("-d and -f are mutually exclusive")
			}
			return runScan(cmd, args, &writableFlags, func(scanSettings) predicate.Predicate {
				return predicate.Writable{DirsOnly: writableDirsOnly, FilesOnly: writableFilesOnly}
			})
		},
	}
	addScanFlags(cmd, &writableFlags)
	cmd.Flags().BoolVarP(&writableDirsOnly, "dirs-only", "d", false, "only report directories")
	cmd.Flags().BoolVarP(&writableFilesOnly, "files-only", "f", false, "only report files")
	rootCmd.AddCommand(cmd)
}
