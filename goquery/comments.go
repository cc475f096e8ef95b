package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shuku"
)

// Ensure CommentExtractor implements shuku.CommentExtractor at compile time.
var _ shuku.CommentExtractor = (*CommentExtractor)(nil)

// floorRe matches floor markers such as "#12", "12楼" and "沙发".
var floorRe = regexp.MustCompile(`^(#\s*\d+|第?\s*\d+\s*楼|沙发|板凳|地板)$`)

// CommentExtractor parses the discussion section of detail pages.
type CommentExtractor struct {
	site shuku.Site
}

// NewCommentExtractor creates a new CommentExtractor for site.
func NewCommentExtractor(site shuku.Site) *CommentExtractor {
	return &CommentExtractor{site: site}
}

// Extract returns comments in document order. Blocks without a reply body
// are dropped.
func (e *CommentExtractor) Extract(html string) ([]*shuku.Comment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shuku.Errorf(shuku.EINVALID, "failed to parse HTML: %v", err)
	}

	comments := []*shuku.Comment{}
	doc.Find("#comments .comment-item").Each(func(_ int, item *goquery.Selection) {
		content := commentContent(item)
		if content == "" {
			return
		}
		comments = append(comments, &shuku.Comment{
			Author:  commentAuthor(item),
			Content: content,
			Date:    commentMeta(item),
			Avatar:  e.site.ResolveImage(imageSource(item.Find("img.avatar").First())),
		})
	})
	return comments, nil
}

func commentAuthor(item *goquery.Selection) string {
	for _, sel := range []string{".comment-author a", ".comment-author", ".comment-title"} {
		if name := normalizeSpace(item.Find(sel).First().Text()); name != "" {
			return name
		}
	}
	return shuku.AnonymousAuthor
}

// commentMeta returns the first metadata line that is not a floor marker.
func commentMeta(item *goquery.Selection) string {
	var meta string
	item.Find(".comment-meta span, .comment-meta time").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalizeSpace(s.Text())
		if text == "" || floorRe.MatchString(text) {
			return true
		}
		meta = text
		return false
	})
	return meta
}

// commentContent renders the reply body, prefixed with the quoted comment
// in "> " form when the block quotes another comment.
func commentContent(item *goquery.Selection) string {
	quote := item.Find(".comment-quote").First()
	quoteText := strings.TrimSpace(quote.Text())

	body := item.Find(".comment-body").First().Clone()
	body.Find(".comment-quote").Remove()
	bodyText := strings.TrimSpace(body.Text())
	if bodyText == "" {
		return ""
	}
	if quoteText == "" {
		return bodyText
	}

	var b strings.Builder
	for _, line := range strings.Split(quoteText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("> ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(bodyText)
	return b.String()
}
