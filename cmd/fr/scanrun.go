package fr

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ferret/ferret/internal/audit"
	"github.com/ferret/ferret/internal/config"
	"github.com/ferret/ferret/internal/fsmeta"
	"github.com/ferret/ferret/internal/ignore"
	"github.com/ferret/ferret/internal/predicate"
	"github.com/ferret/ferret/internal/report"
	"github.com/ferret/ferret/internal/traverse"
)

// scanFlags are the options shared by every pentest subcommand.
type scanFlags struct {
	quiet        bool
	verbose      bool
	output       string
	exclude      string
	baselinePath string
	saveBaseline string
	audit        bool
	maxDepth     int
}

func addScanFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "only print matched paths, no banner or summary")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "print predicate detail with each match")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write results to this file instead of stdout")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&f.baselinePath, "baseline", "", "only report matches absent from this baseline file")
	cmd.Flags().StringVar(&f.saveBaseline, "save-baseline", "", "write matched paths to a baseline file after the scan")
	cmd.Flags().BoolVar(&f.audit, "audit", false, "append a scan record to the audit log")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "limit recursion depth (0 = unbounded)")
}

// scanSettings is flags merged with local and global config.
type scanSettings struct {
	exclude       []string
	extraPatterns []string
	windowMinutes int
	maxDepth      int
	noColor       bool
	audit         bool
}

func resolveSettings(root string, f *scanFlags) scanSettings {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	s := scanSettings{
		exclude:       splitList(pickString(f.exclude, lcfg.Exclude, gcfg.Exclude)),
		extraPatterns: splitList(pickString("", lcfg.ExtraPatterns, gcfg.ExtraPatterns)),
		windowMinutes: pickInt(0, lcfg.WindowMinutes, gcfg.WindowMinutes),
		maxDepth:      pickInt(f.maxDepth, lcfg.MaxDepth, gcfg.MaxDepth),
		noColor:       colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor)),
		audit:         f.audit || pickBool(false, lcfg.Audit, gcfg.Audit),
	}
	return s
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// runScan drives one pentest scan end to end: resolve settings, build the
// traversal stream, drain it into the reporter, and handle baseline and
// audit bookkeeping. mk builds the predicate after config resolution so the
// configs catalog and recent window can honor file settings.
func runScan(cmd *cobra.Command, args []string, f *scanFlags, mk func(s scanSettings) predicate.Predicate) error {
	root := "/"
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	s := resolveSettings(abs, f)
	pred := mk(s)

	ign, err := ignore.Load(filepath.Join(abs, ".ferretignore"))
	if err != nil {
		return fmt.Errorf("load .ferretignore: %w", err)
	}
	if len(s.exclude) > 0 {
		ign = ignore.Merge(ign, ignore.New(s.exclude))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := traverse.New(ctx, traverse.Request{
		Root:     abs,
		Pred:     pred,
		MaxDepth: s.maxDepth,
		Exclude:  ign,
	})
	if err != nil {
		return err
	}

	mode := report.Quiet
	if f.verbose {
		mode = report.Verbose
	}
	rep, err := report.New(f.output, report.Options{Mode: mode, NoColor: s.noColor})
	if err != nil {
		return err
	}

	if pred.ID() == "caps" && !fsmeta.CapsSupported() {
		rep.Warn("file capabilities are not supported on this platform; the check reports no matches")
	}
	if !f.quiet {
		fmt.Fprintf(os.Stderr, "Scanning %s for %s...\n", abs, pred.ID())
	}

	var base report.Baseline
	if f.baselinePath != "" {
		base, _ = report.LoadBaseline(f.baselinePath)
	}

	started := time.Now()
	// Matched paths are retained only when a baseline is being written;
	// otherwise the scan stays streaming, memory bounded by tree depth.
	var matched []string
	var suppressed int
	for it, ok := stream.Next(); ok; it, ok = stream.Next() {
		if it.Outcome.Status != predicate.Matched {
			continue
		}
		if f.saveBaseline != "" {
			matched = append(matched, it.Entry.Path)
		}
		if f.baselinePath != "" && base.Has(pred.ID(), it.Entry.Path) {
			suppressed++
			continue
		}
		if err := rep.Emit(it); err != nil {
			rep.Incomplete(err)
			_ = rep.Close()
			return err
		}
	}
	if err := stream.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "scan interrupted")
	}

	counters := stream.Counters()
	if !f.quiet {
		rep.Summary(counters, time.Since(started))
		rep.Suppressed(suppressed)
	}
	if err := rep.Close(); err != nil {
		return err
	}

	if f.saveBaseline != "" {
		if err := report.SaveBaseline(f.saveBaseline, pred.ID(), matched); err != nil {
			return fmt.Errorf("save baseline: %w", err)
		}
	}
	if s.audit {
		rec := audit.ScanRecord{
			Command:       cmd.Name(),
			Root:          abs,
			Visited:       counters.Visited,
			Matched:       counters.Matched,
			SkippedDirs:   counters.SkippedDirs,
			Indeterminate: counters.Indeterminate,
			Duration:      time.Since(started).Round(time.Millisecond).String(),
		}
		if err := audit.New().Append(rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}
