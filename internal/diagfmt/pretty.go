package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"optlint/internal/diag"
	"optlint/internal/source"
)

var (
	pathColor    = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	markerColor  = color.New(color.FgGreen, color.Bold)
	fixColor     = color.New(color.FgGreen)
	noteColor    = color.New(color.FgCyan)
)

// Pretty renders the bag in compiler style, one block per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by notes and fix suggestions when enabled. Callers are
// expected to Sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		paint(opts.Color, pathColor, fmt.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col)),
		paint(opts.Color, severityColor(d.Severity), strings.ToUpper(d.Severity.String())),
		paint(opts.Color, severityColor(d.Severity), d.Code.ID()),
		d.Message,
	)

	writeSourceContext(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nFile := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				paint(opts.Color, noteColor, "note:"),
				formatPath(nFile, fs, opts.PathMode), nStart.Line, nStart.Col, n.Msg)
		}
	}

	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", paint(opts.Color, fixColor, "fix:"), f.Title)
		}
	}
}

// writeSourceContext prints the first line the span touches with a
// caret underline. The underline is clipped at the line end and its
// width follows the rendered width of the underlined text, so tabs and
// wide runes stay aligned.
func writeSourceContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	if file == nil {
		return
	}
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	prefixWidth := runewidth.StringWidth(line[:col])

	length := int(span.Len())
	if length < 1 {
		length = 1
	}
	if col+length > len(line) {
		length = len(line) - col
	}
	underWidth := 1
	if length > 0 {
		underWidth = runewidth.StringWidth(line[col : col+length])
	}
	if underWidth < 1 {
		underWidth = 1
	}

	marker := "^" + strings.Repeat("~", underWidth-1)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", prefixWidth), paint(opts.Color, markerColor, marker))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func formatPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", fs.BaseDir())
	}
}
