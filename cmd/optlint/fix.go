package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"optlint/internal/diag"
	"optlint/internal/driver"
	"optlint/internal/fix"
	"optlint/internal/source"
)

var (
	fixAll bool
	fixID  string
)

func init() {
	fixCmd.Flags().BoolVar(&fixAll, "all", false, "apply every always-safe fix")
	fixCmd.Flags().StringVar(&fixID, "id", "", "apply only the fix with this ID")
}

var fixCmd = &cobra.Command{
	Use:   "fix [path]",
	Short: "Apply suggested autoload fixes",
	Long:  `fix re-checks the target and applies suggested corrections. By default only the first fix is applied; use --all to apply every always-safe fix.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	cfg, err := loadConfig(target)
	if err != nil {
		return err
	}

	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")
	quiet, _ := cmd.Flags().GetBool("quiet")

	// always re-analyze; stale cached spans must never drive edits
	opts := driver.Options{MaxDiagnostics: maxDiagnostics}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var fileSet *source.FileSet
	var results []*driver.FileResult
	if info.IsDir() {
		fileSet, results, err = driver.CheckDir(cmd.Context(), target, driver.DirOptions{
			Options:    opts,
			Extensions: cfg.Lint.Extensions,
			Exclude:    cfg.Lint.Exclude,
		})
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		results = []*driver.FileResult{driver.CheckFile(fileSet, target, opts)}
	}

	var diagnostics []diag.Diagnostic
	for _, r := range results {
		diagnostics = append(diagnostics, r.Bag.Items()...)
	}

	applyOpts := fix.ApplyOptions{Mode: fix.ApplyModeOnce}
	switch {
	case fixID != "":
		applyOpts = fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: fixID}
	case fixAll:
		applyOpts = fix.ApplyOptions{Mode: fix.ApplyModeAll}
	}

	result, err := fix.Apply(fileSet, diagnostics, applyOpts)
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to fix")
		}
		return nil
	}
	if err != nil {
		return err
	}

	printFixResult(cmd, result, quiet)
	return nil
}

func printFixResult(cmd *cobra.Command, result *fix.ApplyResult, quiet bool) {
	out := cmd.OutOrStdout()
	useColor := colorEnabled(cmd)

	appliedColor := color.New(color.FgGreen)
	skippedColor := color.New(color.FgYellow)

	for _, a := range result.Applied {
		line := fmt.Sprintf("applied: %s (%s)", a.Title, a.PrimaryPath)
		if useColor {
			line = appliedColor.Sprint(line)
		}
		fmt.Fprintln(out, line)
	}
	if !quiet {
		for _, s := range result.Skipped {
			line := fmt.Sprintf("skipped: %s: %s", s.Title, s.Reason)
			if useColor {
				line = skippedColor.Sprint(line)
			}
			fmt.Fprintln(out, line)
		}
	}

	edits := 0
	for _, c := range result.FileChanges {
		edits += c.EditCount
	}
	if !quiet {
		fmt.Fprintf(out, "applied %d fix(es), %d edit(s) in %d file(s)\n",
			len(result.Applied), edits, len(result.FileChanges))
	}
}
