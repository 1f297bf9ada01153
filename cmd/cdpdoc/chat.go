package main

import (
	"fmt"

	"github.com/fwojciec/cdpdoc"
	"github.com/fwojciec/cdpdoc/bubbletea"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	var searcher cdpdoc.Searcher = deps.Searcher
	if deps.History != nil {
		searcher = &RecordingSearcher{Searcher: deps.Searcher, History: deps.History, Logger: deps.Logger}
	}
	model := bubbletea.NewModel(deps.Ctx, deps.Catalog, searcher)
	if err := deps.RunTUI(deps.Ctx, model); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}
	return nil
}
