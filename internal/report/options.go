// Package report renders check results for humans and machines.
package report

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of violations.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// ShowFixed appends a marker to violations the fixer resolved.
	ShowFixed bool
}

// JSONOpts configures JSON output of violations.
type JSONOpts struct {
	PathMode PathMode
	// Max truncates the output, not the underlying bag.
	Max int
}
