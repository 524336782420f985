package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sniff/internal/diag"
	"sniff/internal/source"
)

// Pretty renders each violation as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line and a ^~~~ underline covering the
// violation span. The bag is expected to be sorted. Violations already
// repaired by the fixer render with a [fixed] marker, or not at all when
// ShowFixed is off.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, v := range bag.Items() {
		if v.Fixed && !opts.ShowFixed {
			continue
		}
		prettyOne(w, v, fs, opts)
	}
}

func prettyOne(w io.Writer, v diag.Violation, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(v.Primary.File)
	path := formatPath(f, fs, opts.PathMode)

	head := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		path, v.Line, v.Col, severityLabel(v.Severity, opts.Color), v.Code.ID(), v.Message)
	if opts.ShowFixed && v.Fixed {
		head += " [fixed]"
	}
	fmt.Fprintln(w, head)

	writeContext(w, f, fs, v.Primary, v.Line, v.Col)

	if opts.ShowNotes {
		for _, n := range v.Notes {
			start, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", path, start.Line, start.Col, n.Msg)
			writeContext(w, f, fs, n.Span, start.Line, start.Col)
		}
	}
}

// writeContext prints the source line and the underline beneath it.
func writeContext(w io.Writer, f *source.File, fs *source.FileSet, sp source.Span, line, col uint32) {
	text := f.GetLine(line)
	if text == "" || col == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", expandTabs(text))

	// Underline width in display cells, not bytes: the prefix may hold
	// tabs or wide runes.
	prefixBytes := int(col) - 1
	if prefixBytes > len(text) {
		prefixBytes = len(text)
	}
	pad := runewidth.StringWidth(expandTabs(text[:prefixBytes]))

	n := 1
	if !sp.Empty() {
		start, end := fs.Resolve(sp)
		switch {
		case start.Line == end.Line && end.Col > start.Col:
			seg := text[prefixBytes:]
			segBytes := int(end.Col - start.Col)
			if segBytes > len(seg) {
				segBytes = len(seg)
			}
			n = runewidth.StringWidth(expandTabs(seg[:segBytes]))
		case start.Line != end.Line:
			n = runewidth.StringWidth(expandTabs(text[prefixBytes:]))
		}
		if n < 1 {
			n = 1
		}
	}
	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", n-1))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func severityLabel(s diag.Severity, colored bool) string {
	if !colored {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(s.String())
	case diag.SevWarning:
		return color.New(color.FgYellow).Sprint(s.String())
	default:
		return color.New(color.FgCyan).Sprint(s.String())
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
