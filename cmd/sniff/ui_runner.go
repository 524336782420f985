package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sniff/internal/engine"
	"sniff/internal/source"
	"sniff/internal/ui"
)

type runOutcome struct {
	fs      *source.FileSet
	results []engine.FileResult
	err     error
}

// runWithProgress drives the engine in the background while the Bubble Tea
// progress model renders events. The event channel closes when the run
// finishes, which quits the UI.
func runWithProgress(title string, files []string,
	start func(events chan<- engine.Event) (*source.FileSet, []engine.FileResult, error),
) (*source.FileSet, []engine.FileResult, error) {

	events := make(chan engine.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		fs, results, err := start(events)
		outcomeCh <- runOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}

// runEngine executes the driver, with or without the TUI.
func runEngine(ctx context.Context, eng *engine.Engine, files []string, run engine.RunOptions, title string, useTUI bool) (*source.FileSet, []engine.FileResult, error) {
	if !useTUI || len(files) == 0 {
		return eng.RunPaths(ctx, files, run)
	}
	return runWithProgress(title, files, func(events chan<- engine.Event) (*source.FileSet, []engine.FileResult, error) {
		run.Events = events
		return eng.RunPaths(ctx, files, run)
	})
}
