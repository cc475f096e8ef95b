package main

import (
	"fmt"

	"github.com/fwojciec/shuku"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	entries, err := deps.Adapter.Search(deps.Ctx, c.Term, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	printEntries(deps.Stdout, entries)
	return nil
}
