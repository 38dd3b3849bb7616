package fr

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/report"
	"github.com/ferret/ferret/internal/traverse"
)

var (
	flagNoColor bool

	version = "0.2.0"
)

// rootCmd is the base Cobra command for the Ferret CLI.
var rootCmd = &cobra.Command{
	Use:           "fr",
	Short:         "Fast file finder and filesystem recon for Linux/Unix systems",
	Long:          "Ferret walks directory trees and reports security-relevant entries: setuid/setgid binaries, world-writable paths, file capabilities, credential-looking names, and recent modifications.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

// Execute runs the Ferret CLI. It should be called by the main package.
// An invalid scan root or a sink write failure exits 1; other CLI errors
// exit 2. Zero matches is success.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, traverse.ErrInvalidRoot) || errors.Is(err, report.ErrSinkWrite) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}

// colorDisabled gates color on the flag, config, and whether stdout is a
// terminal, so piped output never carries escape sequences.
func colorDisabled(fromConfig bool) bool {
	if flagNoColor || fromConfig {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd())
}
