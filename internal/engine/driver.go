package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sniff/internal/diag"
	"sniff/internal/source"
)

// ListFiles returns the sorted .php files under each of the given paths.
// A path naming a file is taken as-is; directories are walked. Exclude
// patterns match against slash-separated paths relative to the walk root.
func ListFiles(paths []string, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(root, path string) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if excluded(filepath.ToSlash(rel), exclude) {
			return
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			add(filepath.Dir(p), p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".php") {
				add(p, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Deterministic processing order.
	sort.Strings(files)
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := filepath.Match(pat, rel); err == nil && ok {
			return true
		}
		// Directory patterns exclude everything beneath them.
		if strings.HasPrefix(rel, strings.TrimSuffix(pat, "/")+"/") {
			return true
		}
	}
	return false
}

// RunOptions tunes one driver invocation.
type RunOptions struct {
	// Jobs is the worker count; 0 means one per CPU.
	Jobs int
	// Exclude holds glob patterns for paths to skip.
	Exclude []string
	// Cache, when non-nil, is consulted and filled in check mode only.
	Cache *Cache
	// RulesetHash keys cache entries alongside the content hash.
	RulesetHash string
	// Events, when non-nil, receives per-file progress notifications.
	// The driver never closes it.
	Events chan<- Event
}

// RunPaths checks or fixes every file in parallel. Results come back in
// the same order as the sorted file list; a per-file I/O failure becomes
// an error violation rather than aborting the run.
func (e *Engine) RunPaths(ctx context.Context, paths []string, run RunOptions) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(paths, run.Exclude)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: the FileSet is not safe for concurrent Add,
	// and fix passes append virtual snapshots from worker goroutines, so
	// each worker gets its own set seeded with just its file.
	type loaded struct {
		content []byte
		err     error
	}
	inputs := make([]loaded, len(files))
	for i, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			inputs[i] = loaded{err: loadErr}
			continue
		}
		inputs[i] = loaded{content: fileSet.Get(id).Content}
		emit(run.Events, Event{File: path, Status: StatusQueued})
	}

	jobs := run.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	stage := StageCheck
	if e.opts.Fix {
		stage = StageFix
	}

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if inputs[i].err != nil {
				local := source.NewFileSet()
				id := local.AddVirtual(path, nil)
				bag := diag.NewBag(e.opts.maxDiagnostics(), nil)
				bag.Add(diag.Violation{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + inputs[i].err.Error(),
					Primary:  source.Span{File: id},
					Line:     1,
					Col:      1,
				})
				results[i] = FileResult{Path: path, FileID: id, FS: local, Bag: bag}
				emit(run.Events, Event{File: path, Stage: stage, Status: StatusError})
				return nil
			}

			emit(run.Events, Event{File: path, Stage: stage, Status: StatusWorking})

			// Worker-local set: the fix loop adds one virtual file per pass.
			local := source.NewFileSet()
			id := local.Add(path, inputs[i].content, 0)
			file := local.Get(id)

			if run.Cache != nil && !e.opts.Fix {
				if hit, ok, err := run.Cache.Get(file.Hash, run.RulesetHash, path, id, e.opts.maxDiagnostics()); err == nil && ok {
					hit.FS = local
					results[i] = hit
					emit(run.Events, Event{File: path, Stage: stage, Status: fileStatus(&hit)})
					return nil
				}
			}

			res := e.RunFile(local, id)
			if run.Cache != nil && !e.opts.Fix {
				// Best effort; a full disk never fails the run.
				_ = run.Cache.Put(file.Hash, run.RulesetHash, &res)
			}
			results[i] = res
			emit(run.Events, Event{File: path, Stage: stage, Status: fileStatus(&res)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func fileStatus(res *FileResult) Status {
	if res.Malformed != nil || (res.Bag != nil && res.Bag.HasErrors()) {
		return StatusError
	}
	return StatusDone
}
