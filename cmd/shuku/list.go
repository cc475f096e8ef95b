package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/shuku"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := c.filter(deps.Config)

	page, err := deps.Adapter.Listing(deps.Ctx, c.Page, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shuku.ErrorMessage(err))
		return err
	}

	printEntries(deps.Stdout, page.Entries)
	return nil
}

func (c *ListCmd) filter(cfg Config) shuku.Filter {
	f := shuku.DefaultFilter()
	f.Category = cfg.DefaultCategory
	f.Sort = cfg.DefaultSort
	if c.Category != "" {
		f.Category = shuku.Category(c.Category)
	}
	if c.Sort != "" {
		f.Sort = shuku.SortOrder(c.Sort)
	}

	switch tags := splitTags(c.Tag); len(tags) {
	case 0:
	case 1:
		f.Tags = shuku.TagSingle{Value: tags[0]}
	default:
		f.Tags = shuku.TagChecks{Values: tags}
	}
	return f
}

// splitTags splits each flag value on commas ("爱情，校园"). Spaces are part
// of a tag name.
func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		tags = append(tags, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == '，'
		})...)
	}
	return tags
}

func printEntries(w io.Writer, entries []*shuku.ListingEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No works found.")
		return
	}

	for _, e := range entries {
		line := []string{e.Path, e.Name}
		if e.Badge != "" {
			line = append(line, "["+e.Badge+"]")
		}
		if e.Info != "" {
			line = append(line, e.Info)
		}
		fmt.Fprintln(w, strings.Join(line, "  "))
	}
}
