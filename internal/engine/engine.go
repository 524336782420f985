// Package engine runs registered rules over files: a single reporting
// pass in check mode, a re-tokenizing fixed-point loop in fix mode, and a
// parallel driver over directory trees.
package engine

import (
	"fmt"

	"sniff/internal/diag"
	"sniff/internal/fixer"
	"sniff/internal/rule"
	"sniff/internal/source"
	"sniff/internal/stream"
)

// Options tunes one engine run.
type Options struct {
	// Fix enables rewriting; false reports only.
	Fix bool
	// MaxPasses caps fix iterations per file. Zero means DefaultMaxPasses.
	MaxPasses int
	// MaxDiagnostics bounds the violations collected per file.
	MaxDiagnostics int
	// Severities remaps rule severities by rule name.
	Severities map[string]diag.Severity
}

const (
	// DefaultMaxPasses is the fix-loop ceiling when the config is silent.
	DefaultMaxPasses = 50
	// DefaultMaxDiagnostics bounds per-file violations when unset.
	DefaultMaxDiagnostics = 1000
)

func (o Options) maxPasses() int {
	if o.MaxPasses > 0 {
		return o.MaxPasses
	}
	return DefaultMaxPasses
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return DefaultMaxDiagnostics
}

// FileResult is the outcome of running one file to completion.
type FileResult struct {
	Path   string
	FileID source.FileID
	// FS is the file set the result's spans resolve against. Each driver
	// worker owns a private set, so results carry theirs.
	FS *source.FileSet
	// Bag holds the violations remaining after the final pass plus the
	// entries repaired in earlier passes, marked Fixed. Sorted and
	// deduplicated within each pass.
	Bag *diag.Bag
	// Applied counts changesets accepted across all passes.
	Applied int
	// Passes is the number of tokenize+dispatch rounds performed.
	Passes int
	// Output is the file content after all accepted fixes.
	Output string
	// Changed reports whether Output differs from the loaded content.
	Changed bool
	// Malformed is set when tokenization failed; Bag is then empty and
	// Output is the original content.
	Malformed *diag.MalformedSourceError
}

// Engine binds a rule registry to run options.
type Engine struct {
	registry *rule.Registry
	opts     Options
}

func New(registry *rule.Registry, opts Options) *Engine {
	return &Engine{registry: registry, opts: opts}
}

// RunFile processes one file. In fix mode it loops: dispatch rules, render
// accepted changesets, re-tokenize the result under a fresh FileID, until
// a pass applies nothing or the pass ceiling is hit. Token indices never
// survive a pass; every pass dispatches over a freshly built stream.
func (e *Engine) RunFile(fs *source.FileSet, id source.FileID) FileResult {
	path := fs.Get(id).Path
	res := FileResult{Path: path, FileID: id, FS: fs}

	cur := id
	nonConverged := false
	fixed := diag.NewBag(e.opts.maxDiagnostics(), fs)
	for {
		res.Passes++
		s, merr := stream.Build(fs, cur)
		if merr != nil {
			res.Malformed = merr
			res.Output = string(fs.Get(cur).Content)
			res.Changed = cur != id
			res.Bag = diag.NewBag(e.opts.maxDiagnostics(), fs)
			return res
		}

		f := fixer.New(s)
		bag := diag.NewBag(e.opts.maxDiagnostics(), fs)
		fixing := e.opts.Fix && res.Passes <= e.opts.maxPasses()
		ctx := &rule.Context{
			Stream:     s,
			Fixer:      f,
			Bag:        bag,
			FixMode:    fixing,
			Reporter:   diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
			Severities: e.opts.Severities,
		}
		e.registry.Dispatch(ctx)

		if fixing && f.Applied() > 0 {
			res.Applied += f.Applied()
			for _, v := range bag.Items() {
				if v.Fixed {
					fixed.Add(v)
				}
			}
			cur = fs.AddVirtual(path, []byte(f.Render()))
			if res.Passes == e.opts.maxPasses() {
				// The ceiling pass still applied fixes; one more pass runs
				// report-only to collect what remains.
				nonConverged = true
			}
			continue
		}

		if nonConverged {
			bag.Add(diag.New(diag.SevInfo, diag.EngineNonConvergence, source.Span{File: cur},
				fmt.Sprintf("fixes did not converge after %d passes; %d violations remain",
					e.opts.maxPasses(), bag.Len())))
		}
		bag.Merge(fixed)
		bag.Sort()
		res.Bag = bag
		res.FileID = cur
		res.Output = string(fs.Get(cur).Content)
		res.Changed = cur != id
		return res
	}
}
