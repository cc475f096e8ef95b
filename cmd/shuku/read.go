package main

import (
	"fmt"

	"github.com/fwojciec/shuku"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	html, err := deps.Adapter.Content(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	if !c.Markdown {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
