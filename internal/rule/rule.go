// Package rule defines the style-rule contract and the dispatcher that
// drives registered rules over a token stream.
package rule

import (
	"sniff/internal/diag"
	"sniff/internal/fixer"
	"sniff/internal/stream"
	"sniff/internal/token"
)

// Rule is one independent style policy. Rules are stateless across tokens
// except for instance-local configuration; they read through the stream
// and write exclusively through the fixer.
type Rule interface {
	// Name is the stable identifier used in reports and configuration.
	Name() string
	// Triggers returns the token kinds whose occurrence invokes Process.
	Triggers() []token.Kind
	// Process inspects the token at index i of the current pass's stream.
	Process(ctx *Context, i int)
}

// Context carries the per-pass collaborators handed to every rule
// invocation. Indices obtained from Stream die with the pass.
type Context struct {
	Stream  *stream.Stream
	Fixer   *fixer.Fixer
	Bag     *diag.Bag
	FixMode bool

	// Reporter receives every reported violation. The engine wires a
	// deduplicating reporter in front of Bag; when nil, reports go to Bag
	// directly.
	Reporter diag.Reporter

	// Severities remaps a rule's default severity by rule name.
	Severities map[string]diag.Severity

	ruleName string
	lastIdx  int
}

// Report records a violation tagged with the current rule's name. It
// returns true when the rule should build a changeset: fix mode is on and
// the (possibly overridden) severity is fixable.
func (c *Context) Report(v diag.Violation) bool {
	v = v.WithRule(c.ruleName)
	if sev, ok := c.Severities[c.ruleName]; ok {
		v.Severity = sev
	}
	rep := c.Reporter
	if rep == nil {
		rep = diag.BagReporter{Bag: c.Bag}
	}
	idx := c.Bag.Len()
	rep.Report(v)
	if c.Bag.Len() == idx {
		// Dropped: either a duplicate or the bag is full.
		c.lastIdx = -1
		return false
	}
	c.lastIdx = idx
	return c.FixMode && v.Severity == diag.SevWarning
}

// MarkFixed flags the most recently reported violation as fixed. Rules
// call it after EndChangeset accepts their changeset.
func (c *Context) MarkFixed() {
	if c.lastIdx >= 0 {
		c.Bag.SetFixed(c.lastIdx)
	}
}
