package report

import (
	"encoding/json"
	"io"

	"sniff/internal/diag"
	"sniff/internal/source"
)

// LocationJSON is a file position in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
}

// NoteJSON is secondary context attached to a violation.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// ViolationJSON is one finding in JSON output.
type ViolationJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Rule     string       `json:"rule,omitempty"`
	Message  string       `json:"message"`
	Fixed    bool         `json:"fixed,omitempty"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// Output is the root JSON structure.
type Output struct {
	Violations []ViolationJSON `json:"violations"`
	Count      int             `json:"count"`
}

func makeLocation(sp source.Span, line, col uint32, fs *source.FileSet, mode PathMode) LocationJSON {
	return LocationJSON{
		File:      formatPath(fs.Get(sp.File), fs, mode),
		StartByte: sp.Start,
		EndByte:   sp.End,
		Line:      line,
		Col:       col,
	}
}

// BuildOutput assembles the JSON structure without serializing it.
func BuildOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) Output {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := Output{Violations: make([]ViolationJSON, 0, maxItems)}
	for i := 0; i < maxItems; i++ {
		v := items[i]
		vj := ViolationJSON{
			Severity: v.Severity.String(),
			Code:     v.Code.ID(),
			Rule:     v.Rule,
			Message:  v.Message,
			Fixed:    v.Fixed,
			Location: makeLocation(v.Primary, v.Line, v.Col, fs, opts.PathMode),
		}
		for _, n := range v.Notes {
			start, _ := fs.Resolve(n.Span)
			vj.Notes = append(vj.Notes, NoteJSON{
				Message:  n.Msg,
				Location: makeLocation(n.Span, start.Line, start.Col, fs, opts.PathMode),
			})
		}
		out.Violations = append(out.Violations, vj)
	}
	out.Count = len(out.Violations)
	return out
}

// JSON serializes the bag for machine consumers.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildOutput(bag, fs, opts))
}
