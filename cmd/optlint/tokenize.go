package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"optlint/internal/diagfmt"
	"optlint/internal/driver"
	"optlint/internal/source"
	"optlint/internal/token"
)

var tokenizeTrivia bool

func init() {
	tokenizeCmd.Flags().BoolVar(&tokenizeTrivia, "trivia", false, "include leading trivia in the dump")
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Dump the token stream of a PHP file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")

		fileSet := source.NewFileSet()
		tokens, bag, err := driver.TokenizeFile(fileSet, args[0], maxDiagnostics)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			if tokenizeTrivia {
				for _, tr := range tok.Leading {
					start, _ := fileSet.Resolve(tr.Span)
					fmt.Fprintf(out, "%5d:%-4d . %-14s %q\n", start.Line, start.Col, tr.Kind, tr.Text)
				}
			}
			if tok.Kind == token.EOF {
				break
			}
			start, _ := fileSet.Resolve(tok.Span)
			fmt.Fprintf(out, "%5d:%-4d %-16s %q\n", start.Line, start.Col, tok.Kind, tok.Text)
		}

		if bag.Len() > 0 {
			bag.Sort()
			diagfmt.Pretty(out, bag, fileSet, diagfmt.PrettyOpts{
				Color:    colorEnabled(cmd),
				PathMode: diagfmt.PathModeAuto,
			})
		}
		return nil
	},
}
