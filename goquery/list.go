package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shuku"
)

// Ensure ListExtractor implements shuku.ListExtractor at compile time.
var _ shuku.ListExtractor = (*ListExtractor)(nil)

// coverPlaceholderMarker appears in the site's own "no cover" image URL.
const coverPlaceholderMarker = "nocover"

var (
	badgeR18     = regexp.MustCompile(`(?i)\bR-?18\b`)
	numberRe     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	wordSuffixRe = regexp.MustCompile(`\s*字$`)
)

// ListExtractor parses listing, tag and search result pages.
type ListExtractor struct {
	site shuku.Site
}

// NewListExtractor creates a new ListExtractor for site.
func NewListExtractor(site shuku.Site) *ListExtractor {
	return &ListExtractor{site: site}
}

// Extract returns one entry per card with a detail link, in document order.
// Later cards pointing at an already-seen path are dropped.
func (e *ListExtractor) Extract(html string) ([]*shuku.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shuku.Errorf(shuku.EINVALID, "failed to parse HTML: %v", err)
	}

	entries := []*shuku.ListingEntry{}
	seen := make(map[string]bool)

	doc.Find(".book-card").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a.book-link[href]").First()
		if link.Length() == 0 {
			link = card.Find("a[href*='/book/']").First()
		}
		href, _ := link.Attr("href")
		path := e.site.RelativePath(href)
		if path == "" || seen[path] {
			return
		}
		seen[path] = true

		entries = append(entries, &shuku.ListingEntry{
			Name:  cardTitle(card, link),
			Path:  path,
			Cover: ResolveCover(e.site, imageSource(card.Find("img").First())),
			Badge: detectBadge(card),
			Info:  cardInfo(card),
		})
	})

	return entries, nil
}

// ResolveCover maps a raw cover reference to an absolute URL, or to the
// placeholder when the reference is empty or the site's "no cover" image.
// Resolving an already-resolved cover returns it unchanged.
func ResolveCover(site shuku.Site, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, coverPlaceholderMarker) || strings.HasPrefix(raw, "data:") {
		return shuku.PlaceholderCover
	}
	if resolved := site.ResolveImage(raw); resolved != "" {
		return resolved
	}
	return shuku.PlaceholderCover
}

// imageSource prefers the lazy-load attribute over src.
func imageSource(img *goquery.Selection) string {
	for _, attr := range []string{"data-src", "data-original", "src"} {
		if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	return ""
}

func cardTitle(card, link *goquery.Selection) string {
	if title := normalizeSpace(card.Find(".book-title").First().Text()); title != "" {
		return title
	}
	if title, ok := link.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if title := normalizeSpace(link.Text()); title != "" {
		return title
	}
	return shuku.UntitledName
}

// detectBadge checks each badge pattern in turn across all badge texts;
// the first pattern that matches decides the badge.
func detectBadge(card *goquery.Selection) string {
	var texts []string
	card.Find(".book-badge, .badge").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			texts = append(texts, t)
		}
	})

	for _, t := range texts {
		if t == "18+" {
			return "18+"
		}
	}
	for _, t := range texts {
		if badgeR18.MatchString(t) {
			return "R-18"
		}
	}
	for _, t := range texts {
		if strings.Contains(t, "18+") {
			return "18+"
		}
	}
	return ""
}

// cardInfo finds the rating and word-count columns by their icons.
func cardInfo(card *goquery.Selection) string {
	var rating, words string
	card.Find(".book-stats span, .book-stats li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		switch {
		case s.Find("i.icon-star").Length() > 0 && rating == "":
			rating = numberRe.FindString(text)
		case s.Find("i.icon-words").Length() > 0 && words == "":
			words = wordSuffixRe.ReplaceAllString(text, "")
		}
	})
	return formatInfo(rating, words)
}

func formatInfo(rating, words string) string {
	if rating == "" && words == "" {
		return ""
	}
	if v, err := strconv.ParseFloat(rating, 64); err == nil && v == 0 {
		return ""
	}

	var parts []string
	if rating != "" {
		parts = append(parts, "评分 "+rating)
	}
	if words != "" {
		parts = append(parts, words+"字")
	}
	return strings.Join(parts, " · ")
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
