package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/cdpdoc"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := cdpdoc.HistoryFilter{Limit: c.Count}
	if c.CDP != "" {
		cdp, err := cdpdoc.ParseCDP(c.CDP)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		filter.CDP = &cdp
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions asked yet. Use 'cdpdoc ask' to ask one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %-14s  %d  %s\n",
			e.AskedAt.Local().Format(time.DateTime), e.CDP, e.Outcome, e.ResultCount, e.Question)
	}

	return nil
}
