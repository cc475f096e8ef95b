package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/shuku"
)

// Run executes the comments command.
func (c *CommentsCmd) Run(deps *Dependencies) error {
	comments, err := deps.Adapter.Comments(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	if len(comments) == 0 {
		fmt.Fprintln(deps.Stdout, "No comments.")
		return nil
	}

	for i, cm := range comments {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		header := cm.Author
		if cm.Date != "" {
			header += "  " + cm.Date
		}
		fmt.Fprintln(deps.Stdout, header)
		fmt.Fprintln(deps.Stdout, strings.TrimRight(cm.Content, "\n"))
	}
	return nil
}
