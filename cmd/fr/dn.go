package fr

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var dnShowErrors bool

func init() {
	cmd := &cobra.Command{
		Use:   "dn -- <command> [args...]",
		Short: "Run a command with its noise routed to /dev/null",
		Long:  "Runs the given command with stdout and stderr discarded, the quick equivalent of appending 2>/dev/null. With -e, stderr is kept and only stdout is discarded.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			child := exec.Command(args[0], args[1:]...)
			child.Stdin = os.Stdin
			if dnShowErrors {
				child.Stderr = os.Stderr
			}
			// Unassigned stdout/stderr are discarded by os/exec.
			err := child.Run()
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&dnShowErrors, "show-errors", "e", false, "keep stderr, discard stdout only")
	rootCmd.AddCommand(cmd)
}
