// Package goquery implements the site's page extractors on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shuku"
)

// Ensure GateDetector implements shuku.GateDetector at compile time.
var _ shuku.GateDetector = (*GateDetector)(nil)

// Content containers whose presence means the page was actually served.
const (
	detailContainer  = ".book-detail"
	readingContainer = "#chapter-content"
)

var (
	loginMarkers = []string{"请先登录", "登录后", "登录/注册", "登录 / 注册", "立即登录"}

	ageMarkers = []string{"年龄确认", "已满18岁", "未满18岁", "未成年人禁止", "成人内容", "18岁以上"}

	passwordMarkers = []string{"请输入密码", "密码保护", "输入访问密码"}
)

// GateDetector classifies pages by scanning their visible text for the
// site's wall markers.
type GateDetector struct{}

// NewGateDetector creates a new GateDetector.
func NewGateDetector() *GateDetector {
	return &GateDetector{}
}

// Detect returns the gate state of a page.
// A login marker only counts when the page lacks the content container for
// its kind, since normal pages mention login in their header and footer.
func (d *GateDetector) Detect(html string, kind shuku.PageKind) shuku.GateState {
	if strings.TrimSpace(html) == "" {
		return shuku.GateNotFound
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return shuku.GateNotFound
	}

	container := doc.Find(containerFor(kind))
	hasContainer := container.Length() > 0
	hasPasswordInput := doc.Find("input[type='password']").Length() > 0

	doc.Find("script, style, noscript").Remove()

	// Work text may quote any marker, so only the chrome around the
	// container is scanned.
	container.Remove()
	text := doc.Text()

	if containsAny(text, loginMarkers) && !hasContainer {
		return shuku.GateLogin
	}
	if containsAny(text, ageMarkers) {
		return shuku.GateAge
	}
	if hasPasswordInput || containsAny(text, passwordMarkers) {
		return shuku.GatePassword
	}
	return shuku.GateNormal
}

func containerFor(kind shuku.PageKind) string {
	if kind == shuku.PageReading {
		return readingContainer
	}
	return detailContainer
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
