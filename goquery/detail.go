package goquery

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shuku"
	"golang.org/x/text/width"
)

// Ensure DetailExtractor implements shuku.DetailExtractor at compile time.
var _ shuku.DetailExtractor = (*DetailExtractor)(nil)

// LoginRequiredName is the name of the placeholder work returned for
// detail pages behind the login wall.
const LoginRequiredName = "Login required"

// LoginRequiredSummary explains the manual steps to get past the login wall.
const LoginRequiredSummary = "This work is only visible to signed-in readers.\n" +
	"1. Open the work on Shuku in the browser.\n" +
	"2. Log in with your Shuku account.\n" +
	"3. Come back and reload this page."

var (
	authorLabelRe    = regexp.MustCompile(`^作者\s*[：:]\s*`)
	typeLabelRe      = regexp.MustCompile(`^(类型|状态)\s*[：:]`)
	wordCountLabelRe = regexp.MustCompile(`^字数\s*[：:]`)
	updateLabelRe    = regexp.MustCompile(`^(更新|最后更新|更新时间)\s*[：:]`)
	dateRe           = regexp.MustCompile(`\d{4}[-/.]\d{1,2}[-/.]\d{1,2}(?:\s+\d{1,2}:\d{2}(?::\d{2})?)?`)
	digitsRe         = regexp.MustCompile(`\d+`)
	wanCountRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)万`)
	tagHrefRe        = regexp.MustCompile(`/tag/[^/?#]+`)

	completedMarkers = []string{"完结", "已完成", "完本"}
)

// DetailExtractor parses a work's detail page.
type DetailExtractor struct {
	site     shuku.Site
	detector shuku.GateDetector
}

// NewDetailExtractor creates a new DetailExtractor. The detector decides
// whether the page is behind the login wall.
func NewDetailExtractor(site shuku.Site, detector shuku.GateDetector) *DetailExtractor {
	return &DetailExtractor{site: site, detector: detector}
}

// Extract parses html into a Work for path.
func (e *DetailExtractor) Extract(html string, path string) (*shuku.Work, error) {
	if e.detector.Detect(html, shuku.PageDetail) == shuku.GateLogin {
		return loginRequiredWork(path), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shuku.Errorf(shuku.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := metaLines(doc)

	work := &shuku.Work{
		Path:     path,
		Name:     detailTitle(doc),
		Cover:    ResolveCover(e.site, imageSource(doc.Find(".book-cover img").First())),
		Author:   detailAuthor(doc, meta),
		Status:   detailStatus(meta),
		Rating:   detailRating(doc),
		Summary:  strings.TrimSpace(doc.Find(".book-intro").First().Text()),
		Tags:     strings.Join(detailTags(doc), ","),
		Chapters: e.chapters(doc),
	}

	if line := firstMatching(meta, wordCountLabelRe); line != "" {
		work.WordCount = parseWordCount(line)
	}

	if line := firstMatching(meta, updateLabelRe); line != "" && len(work.Chapters) > 0 {
		work.Chapters[0].Released = dateRe.FindString(line)
	}

	return work, nil
}

func loginRequiredWork(path string) *shuku.Work {
	return &shuku.Work{
		Path:     path,
		Name:     LoginRequiredName,
		Cover:    shuku.PlaceholderCover,
		Status:   shuku.StatusOngoing,
		Summary:  LoginRequiredSummary,
		Chapters: []*shuku.Chapter{},
	}
}

// metaLines returns the trimmed text of each metadata line.
func metaLines(doc *goquery.Document) []string {
	var lines []string
	doc.Find(".book-meta li, .book-meta p").Each(func(_ int, s *goquery.Selection) {
		if line := normalizeSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

func firstMatching(lines []string, re *regexp.Regexp) string {
	for _, line := range lines {
		if re.MatchString(line) {
			return line
		}
	}
	return ""
}

func detailTitle(doc *goquery.Document) string {
	title := normalizeSpace(doc.Find("h1.book-title").First().Text())
	if title == "" {
		title = normalizeSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		return shuku.UntitledName
	}
	return title
}

func detailAuthor(doc *goquery.Document, meta []string) string {
	if author := normalizeSpace(doc.Find(".book-author a").First().Text()); author != "" {
		return author
	}
	if author := normalizeSpace(doc.Find(".book-author").First().Text()); author != "" {
		return authorLabelRe.ReplaceAllString(author, "")
	}
	if line := firstMatching(meta, authorLabelRe); line != "" {
		return strings.TrimSpace(authorLabelRe.ReplaceAllString(line, ""))
	}
	return ""
}

func detailStatus(meta []string) shuku.Status {
	line := firstMatching(meta, typeLabelRe)
	if containsAny(line, completedMarkers) {
		return shuku.StatusCompleted
	}
	return shuku.StatusOngoing
}

func detailRating(doc *goquery.Document) *float64 {
	m := numberRe.FindString(doc.Find(".book-rating").First().Text())
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseWordCount folds full-width digits, strips thousands separators and
// keeps only the digits. A count in 万 (ten thousands) is scaled instead,
// so "12.3万" is 123000. Non-positive counts are dropped.
func parseWordCount(line string) *int {
	line = width.Narrow.String(line)
	line = strings.NewReplacer(",", "", "，", "", " ", "").Replace(wordCountLabelRe.ReplaceAllString(line, ""))

	var n int
	if m := wanCountRe.FindStringSubmatch(line); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		n = int(math.Round(v * 10000))
	} else {
		digits := strings.Join(digitsRe.FindAllString(line, -1), "")
		if digits == "" {
			return nil
		}
		var err error
		if n, err = strconv.Atoi(digits); err != nil {
			return nil
		}
	}
	if n <= 0 {
		return nil
	}
	return &n
}

// detailTags prefers the tag widget and falls back to any tag-styled link
// pointing at a tag page. Order of first appearance is kept.
func detailTags(doc *goquery.Document) []string {
	var tags []string
	seen := make(map[string]bool)
	add := func(t string) {
		t = normalizeSpace(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}

	doc.Find(".tag-box a").Each(func(_ int, s *goquery.Selection) {
		add(s.Text())
	})
	if len(tags) > 0 {
		return tags
	}

	doc.Find("a.tag[href], a[class*='tag'][href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if tagHrefRe.MatchString(href) {
			add(s.Text())
		}
	})
	return tags
}

// chapters lists the chapter anchors in document order, numbering the ones
// kept from 1.
func (e *DetailExtractor) chapters(doc *goquery.Document) []*shuku.Chapter {
	chapters := []*shuku.Chapter{}
	doc.Find("#chapter-list a").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("data-title")
		name = normalizeSpace(name)
		if name == "" {
			name = normalizeSpace(s.Text())
		}
		href, _ := s.Attr("href")
		path := e.site.RelativePath(href)
		if name == "" || path == "" {
			return
		}
		chapters = append(chapters, &shuku.Chapter{
			Name:   name,
			Path:   path,
			Number: len(chapters) + 1,
		})
	})
	return chapters
}
