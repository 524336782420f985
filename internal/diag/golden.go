package diag

import (
	"fmt"
	"sort"
	"strings"

	"sniff/internal/source"
)

type renderedViolation struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders violations into a stable, single-line-per-entry
// representation suitable for golden comparisons and CLI short output.
func FormatShort(items []Violation, fs *source.FileSet) string {
	if len(items) == 0 {
		return ""
	}

	rendered := make([]renderedViolation, 0, len(items))
	for _, v := range items {
		path := ""
		line, col := v.Line, v.Col
		if fs != nil {
			file := fs.Get(v.Primary.File)
			path = file.FormatPath("auto", fs.BaseDir())
			if line == 0 {
				start, _ := fs.Resolve(v.Primary)
				line, col = start.Line, start.Col
			}
		}
		rendered = append(rendered, renderedViolation{
			Severity: v.Severity.String(),
			Code:     v.Code.ID(),
			Path:     path,
			Line:     line,
			Column:   col,
			Message:  v.Message,
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
