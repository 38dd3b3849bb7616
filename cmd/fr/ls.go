package fr

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/listing"
)

var (
	lsAll          bool
	lsLong         bool
	lsRecursive    bool
	lsHuman        bool
	lsExplainPerms bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List files in a directory with permission detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return listing.List(os.Stdout, path, listing.Options{
				All:          lsAll,
				Long:         lsLong,
				Recursive:    lsRecursive,
				Human:        lsHuman,
				ExplainPerms: lsExplainPerms,
				NoColor:      colorDisabled(false),
			})
		},
	}
	cmd.Flags().BoolVarP(&lsAll, "all", "a", false, "show hidden files")
	cmd.Flags().BoolVarP(&lsLong, "long", "l", false, "long format with permissions, size, and mtime")
	cmd.Flags().BoolVarP(&lsRecursive, "recursive", "R", false, "list subdirectories recursively")
	cmd.Flags().BoolVarP(&lsHuman, "human", "H", false, "human-readable file sizes")
	cmd.Flags().BoolVarP(&lsExplainPerms, "explain-perms", "e", false, "spell out the permission triads")
	rootCmd.AddCommand(cmd)
}
