package main

import (
	"context"
	"io"

	"github.com/fwojciec/shuku"
	"github.com/fwojciec/shuku/site"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     Config
	Adapter    *site.Adapter
	Vocabulary shuku.TagVocabulary
	Converter  shuku.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browser bool `help:"Fetch pages with headless Chrome instead of plain HTTP"`
	Debug   bool `help:"Log every fetch and vocabulary merge to stderr"`

	List     ListCmd     `cmd:"" help:"List works by category, sort order and tags"`
	Search   SearchCmd   `cmd:"" help:"Search works by keyword"`
	Detail   DetailCmd   `cmd:"" help:"Show a work and its chapters"`
	Read     ReadCmd     `cmd:"" help:"Print a chapter's text"`
	Comments CommentsCmd `cmd:"" help:"Show a work's comments"`
	Tags     TagsCmd     `cmd:"" help:"List tags seen so far"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Page     int      `short:"p" default:"1" help:"Page number"`
	Category string   `short:"c" help:"Category: original, fanfic, adult, following"`
	Sort     string   `short:"s" help:"Sort: latest, popular, rating, words"`
	Tag      []string `short:"t" help:"Tag to filter by (repeatable)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Search keyword"`
	Page int    `short:"p" default:"1" help:"Page number"`
}

// DetailCmd is the "detail" subcommand.
type DetailCmd struct {
	Path string `arg:"" help:"Work path or URL, e.g. /book/123"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Path     string `arg:"" help:"Chapter path or URL, e.g. /book/123/1"`
	Markdown bool   `short:"m" help:"Render the chapter as Markdown"`
}

// CommentsCmd is the "comments" subcommand.
type CommentsCmd struct {
	Path string `arg:"" help:"Work path or URL"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct{}
