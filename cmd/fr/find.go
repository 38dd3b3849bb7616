package fr

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/predicate"
)

var (
	findFlags      scanFlags
	findIgnoreCase bool
	findType       string
	findMinSize    string
	findMaxSize    string
)

func init() {
	cmd := &cobra.Command{
		Use:   "find <pattern> [path]",
		Short: "Find files by name with glob patterns and size/type filters",
		Long:  "Searches for entries whose name matches the given glob pattern. A pattern without glob metacharacters matches as a substring. Optional filters narrow by entry type and file size.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch findType {
			case "", "file", "dir", "symlink":
			default:
				return fmt.Errorf("unknown type %q (want file, dir, or symlink)", findType)
			}
			minSize, err := parseSize(findMinSize)
			if err != nil {
				return fmt.Errorf("parse --min-size: %w", err)
			}
			maxSize, err := parseSize(findMaxSize)
			if err != nil {
				return fmt.Errorf("parse --max-size: %w", err)
			}
			// Unlike the pentest sweeps, a name search defaults to the
			// current directory, not the filesystem root.
			roots := args[1:]
			if len(roots) == 0 {
				roots = []string{"."}
			}
			return runScan(cmd, roots, &findFlags, func(scanSettings) predicate.Predicate {
				return predicate.Find{
					Pattern:    args[0],
					IgnoreCase: findIgnoreCase,
					Kind:       findType,
					MinSize:    minSize,
					MaxSize:    maxSize,
				}
			})
		},
	}
	addScanFlags(cmd, &findFlags)
	cmd.Flags().BoolVarP(&findIgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	cmd.Flags().StringVarP(&findType, "type", "t", "", "entry type filter (file, dir, symlink)")
	cmd.Flags().StringVar(&findMinSize, "min-size", "", "minimum file size (e.g. 500K, 2M)")
	cmd.Flags().StringVar(&findMaxSize, "max-size", "", "maximum file size (e.g. 1G)")
	rootCmd.AddCommand(cmd)
}

func parseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}
