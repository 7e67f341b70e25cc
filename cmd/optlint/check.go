package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"optlint/internal/diag"
	"optlint/internal/diagfmt"
	"optlint/internal/driver"
	"optlint/internal/metrics"
	"optlint/internal/source"
	"optlint/internal/ui"
)

var (
	checkFormat   string
	checkJobs     int
	checkProgress bool
	checkNoCache  bool
	checkStats    bool
)

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "parallel workers for directory checks (0 = all CPUs)")
	checkCmd.Flags().BoolVar(&checkProgress, "progress", false, "show interactive progress for directory checks")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "disable the result cache")
	checkCmd.Flags().BoolVar(&checkStats, "stats", false, "print autoload value statistics")
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check autoload arguments in a file or directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	if checkFormat != "pretty" && checkFormat != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", checkFormat)
	}

	cfg, err := loadConfig(target)
	if err != nil {
		return err
	}

	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet, _ := cmd.Flags().GetBool("quiet")
	timings, _ := cmd.Flags().GetBool("timings")

	opts := driver.Options{MaxDiagnostics: maxDiagnostics}
	if cfg.Cache.Enabled && !checkNoCache {
		if cache, err := driver.OpenDiskCache("optlint"); err == nil {
			opts.Cache = cache
		}
	}

	fileSet, results, err := checkTarget(cmd, target, cfg, opts)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics * (len(results) + 1))
	col := metrics.NewCollector()
	for _, r := range results {
		bag.Merge(r.Bag)
		col.Merge(r.Metrics)
	}
	bag.Sort()
	bag.Dedup()

	out := cmd.OutOrStdout()

	if checkFormat == "json" {
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
			IncludeMetrics:   true,
			PathMode:         diagfmt.PathModeAuto,
		}
		if err := diagfmt.JSON(out, bag, fileSet, col.Totals(), jsonOpts); err != nil {
			return err
		}
	} else {
		diagfmt.Pretty(out, bag, fileSet, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd),
			ShowNotes: true,
			ShowFixes: true,
			PathMode:  diagfmt.PathModeAuto,
		})
		if checkStats {
			printStats(out, col)
		}
		if timings {
			for _, r := range results {
				fmt.Fprintf(out, "%s: total %.2f ms (cached=%v)\n", r.Path, r.Timing.TotalMS, r.FromCache)
			}
		}
		if !quiet {
			fmt.Fprintf(out, "checked %d file(s): %d problem(s), %d fixable\n",
				len(results), bag.Len(), countFixable(bag))
		}
	}

	if bag.Len() > 0 {
		return fmt.Errorf("found %d problem(s)", bag.Len())
	}
	return nil
}

// checkTarget dispatches to the single-file or directory pipeline,
// optionally behind the progress TUI.
func checkTarget(cmd *cobra.Command, target string, cfg projectConfig, opts driver.Options) (*source.FileSet, []*driver.FileResult, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, nil, err
	}

	if !info.IsDir() {
		fileSet := source.NewFileSet()
		return fileSet, []*driver.FileResult{driver.CheckFile(fileSet, target, opts)}, nil
	}

	dirOpts := driver.DirOptions{
		Options:    opts,
		Extensions: cfg.Lint.Extensions,
		Exclude:    cfg.Lint.Exclude,
		Jobs:       checkJobs,
	}

	if checkProgress && checkFormat == "pretty" && isTerminal(os.Stdout) {
		return checkDirWithProgress(cmd, target, dirOpts)
	}
	return driver.CheckDir(cmd.Context(), target, dirOpts)
}

type dirOutcome struct {
	fileSet *source.FileSet
	results []*driver.FileResult
	err     error
}

func checkDirWithProgress(cmd *cobra.Command, dir string, dirOpts driver.DirOptions) (*source.FileSet, []*driver.FileResult, error) {
	files, err := driver.ListFiles(dir, dirOpts)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 4)
	dirOpts.Events = events

	done := make(chan dirOutcome, 1)
	go func() {
		fileSet, results, err := driver.CheckDir(cmd.Context(), dir, dirOpts)
		done <- dirOutcome{fileSet: fileSet, results: results, err: err}
	}()

	model := ui.NewProgressModel("optlint check", files, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		// the check keeps running; fall through to its outcome
		fmt.Fprintf(cmd.ErrOrStderr(), "progress display failed: %v\n", err)
	}

	// keep draining after the display stops (early quit included) so
	// workers never block on the event channel
	for range events {
	}

	outcome := <-done
	return outcome.fileSet, outcome.results, outcome.err
}

func printStats(out io.Writer, col *metrics.Collector) {
	totals := col.Totals()
	if len(totals) == 0 {
		return
	}
	fmt.Fprintln(out, "autoload values:")
	for _, t := range totals {
		fmt.Fprintf(out, "  %-20s %d\n", t.Value, t.Count)
	}
}

func countFixable(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Fixable() {
			n++
		}
	}
	return n
}
