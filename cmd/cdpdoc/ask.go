package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/cdpdoc"
)

// AskResponse is the --json form of an answer.
type AskResponse struct {
	DetectedCDP cdpdoc.CDP `json:"detected_cdp"`
	Query       string     `json:"query"`
	Results     []string   `json:"results"`
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	cdp := deps.Catalog.Classify(c.Question)
	if c.CDP != "" {
		parsed, err := cdpdoc.ParseCDP(c.CDP)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		cdp = parsed
	}

	res, err := deps.Searcher.Search(deps.Ctx, cdp, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	recordHistory(deps.Ctx, deps.History, deps.Logger, c.Question, res)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(AskResponse{
			DetectedCDP: cdp,
			Query:       c.Question,
			Results:     res.Messages(),
		})
	}

	fmt.Fprintf(deps.Stdout, "CDP: %s\n\n", cdp)
	fmt.Fprintln(deps.Stdout, cdpdoc.FormatResult(res))
	return nil
}
