// Package htmltomarkdown renders sanitized chapter HTML as Markdown for
// terminal reading.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/shuku"
)

// Ensure Converter implements shuku.Converter at compile time.
var _ shuku.Converter = (*Converter)(nil)

// paragraphIndent is the leading whitespace chapters use to indent
// paragraphs: ideographic spaces and no-break spaces.
const paragraphIndent = "\u3000\u00a0"

var (
	// A hard line break: two trailing spaces or a trailing backslash.
	hardBreakRe  = regexp.MustCompile(`(?m)( {2,}|\\)$`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert chapter HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a chapter fragment into Markdown.
// Chapters often separate paragraphs with <br> instead of <p>, so every
// hard line break becomes a paragraph break, and paragraph indentation is
// dropped.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", shuku.Errorf(shuku.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return tidyChapter(result), nil
}

func tidyChapter(md string) string {
	md = hardBreakRe.ReplaceAllString(md, "\n")

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, paragraphIndent)
		if strings.TrimSpace(lines[i]) == "" {
			lines[i] = ""
		}
	}
	md = strings.Join(lines, "\n")

	md = blankLinesRe.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}
