package main

import (
	"fmt"

	"github.com/fwojciec/shuku"
)

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	opts, err := deps.Vocabulary.Options(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	if len(opts) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags yet. Tags are collected as you open works with 'shuku detail'.")
		return nil
	}

	for _, o := range opts {
		fmt.Fprintln(deps.Stdout, o.Label)
	}
	return nil
}
