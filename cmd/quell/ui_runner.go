package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quell/internal/driver"
	"quell/internal/source"
	"quell/internal/suppress"
	"quell/internal/ui"
)

type scanOutcome struct {
	results []driver.UnitResult
	err     error
}

func runScanWithUI(ctx context.Context, title string, eng *suppress.Engine, files *source.FileSet, units []*driver.Unit, opts driver.ProcessOptions) ([]driver.UnitResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	paths := make([]string, len(units))
	for i, u := range units {
		paths[i] = u.Path
	}

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		res, err := driver.ProcessUnits(ctx, eng, files, units, optsCopy)
		outcomeCh <- scanOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
