package fr

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ferret/ferret/internal/stats"
)

var (
	statsRecursive bool
	statsHidden    bool
	statsVerbose   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Show statistics about files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
			return stats.Show(os.Stdout, path, stats.Options{
				Recursive: statsRecursive,
				Hidden:    statsHidden,
				Verbose:   statsVerbose,
				NoColor:   colorDisabled(false),
				Width:     width,
			})
		},
	}
	cmd.Flags().BoolVarP(&statsRecursive, "recursive", "r", false, "analyze recursively")
	cmd.Flags().BoolVarP(&statsHidden, "hidden", "H", false, "include hidden files")
	cmd.Flags().BoolVarP(&statsVerbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(cmd)
}
