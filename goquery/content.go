package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shuku"
)

// Ensure ContentSanitizer implements shuku.ContentSanitizer at compile time.
var _ shuku.ContentSanitizer = (*ContentSanitizer)(nil)

// nonContentSelector matches nodes removed from the reading container.
// Ad slot classes are matched as whole class names or with an "ad-slot-"
// prefix, never as a substring of another class.
const nonContentSelector = `script, style, noscript, iframe, .ad, .ads, .advert, ins.adsbygoogle, [id^="ad-"], .ad-slot, [class^="ad-slot-"], [class*=" ad-slot-"]`

// ContentSanitizer extracts the readable part of a chapter page.
type ContentSanitizer struct {
	detector shuku.GateDetector
}

// NewContentSanitizer creates a new ContentSanitizer.
func NewContentSanitizer(detector shuku.GateDetector) *ContentSanitizer {
	return &ContentSanitizer{detector: detector}
}

// Sanitize returns the reading container's inner HTML with scripts, styles
// and ad containers removed. Walled pages return the fixed fragment for
// their wall. A page without the container returns shuku.NotFoundContent
// with shuku.GateNotFound.
func (s *ContentSanitizer) Sanitize(html string) (string, shuku.GateState, error) {
	switch state := s.detector.Detect(html, shuku.PageReading); state {
	case shuku.GateLogin:
		return shuku.LoginContent, state, nil
	case shuku.GateAge:
		return shuku.AgeContent, state, nil
	case shuku.GatePassword:
		return shuku.PasswordContent, state, nil
	case shuku.GateNotFound:
		return shuku.NotFoundContent, state, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", shuku.GateNormal, shuku.Errorf(shuku.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Find(readingContainer).First()
	if container.Length() == 0 {
		return shuku.NotFoundContent, shuku.GateNotFound, nil
	}

	container.Find(nonContentSelector).Remove()

	content, err := container.Html()
	if err != nil {
		return "", shuku.GateNormal, err
	}
	return content, shuku.GateNormal, nil
}
