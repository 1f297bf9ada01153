package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/cdpdoc"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	cdp, err := cdpdoc.ParseCDP(c.CDP)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s\n", c.File)
		return err
	}

	lines := cdpdoc.CleanLines(strings.Split(string(data), "\n"))
	if err := deps.Corpus.ReplaceLines(deps.Ctx, cdp, lines); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d lines for %s\n", len(lines), cdp)
	return nil
}
