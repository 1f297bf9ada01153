package main

import (
	"fmt"

	"github.com/fwojciec/cdpdoc"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	for _, cdp := range deps.Catalog.CDPs() {
		lines, err := deps.Corpus.Lines(deps.Ctx, cdp)
		switch {
		case cdpdoc.ErrorCode(err) == cdpdoc.ENOTFOUND:
			fmt.Fprintf(deps.Stdout, "%-10s  missing\n", cdp)
		case err != nil:
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		default:
			fmt.Fprintf(deps.Stdout, "%-10s  %d lines\n", cdp, len(lines))
		}
	}
	return nil
}
