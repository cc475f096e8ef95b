package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/shuku"
)

// Run executes the detail command.
func (c *DetailCmd) Run(deps *Dependencies) error {
	work, err := deps.Adapter.Detail(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	w := deps.Stdout
	fmt.Fprintln(w, work.Name)
	if work.Author != "" {
		fmt.Fprintf(w, "Author:   %s\n", work.Author)
	}
	fmt.Fprintf(w, "Status:   %s\n", work.Status)
	if work.Rating != nil {
		fmt.Fprintf(w, "Rating:   %s\n", strconv.FormatFloat(*work.Rating, 'f', -1, 64))
	}
	if work.WordCount != nil {
		fmt.Fprintf(w, "Words:    %d\n", *work.WordCount)
	}
	if work.Tags != "" {
		fmt.Fprintf(w, "Tags:     %s\n", work.Tags)
	}
	if work.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", work.Summary)
	}

	if len(work.Chapters) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nChapters (%d total):\n", len(work.Chapters))
	for _, ch := range work.Chapters {
		fmt.Fprintf(w, "  %d. %s  %s\n", ch.Number, ch.Name, ch.Path)
	}
	return nil
}
