package diag

// Severity defines the importance of a violation.
type Severity uint8

const (
	// SevInfo is for informational diagnostics (non-convergence notices).
	SevInfo Severity = iota
	// SevWarning marks a fixable violation; the fixer may resolve it.
	SevWarning
	// SevError marks a violation that cannot be auto-fixed.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
