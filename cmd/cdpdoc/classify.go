package main

import (
	"fmt"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Catalog.Classify(c.Question))
	return nil
}
