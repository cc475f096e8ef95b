package mock

import "github.com/fwojciec/shuku"

// Compile-time interface verification.
var (
	_ shuku.GateDetector     = (*GateDetector)(nil)
	_ shuku.ListExtractor    = (*ListExtractor)(nil)
	_ shuku.DetailExtractor  = (*DetailExtractor)(nil)
	_ shuku.ContentSanitizer = (*ContentSanitizer)(nil)
	_ shuku.CommentExtractor = (*CommentExtractor)(nil)
)

// GateDetector is a mock implementation of shuku.GateDetector.
type GateDetector struct {
	DetectFn func(html string, kind shuku.PageKind) shuku.GateState
}

func (d *GateDetector) Detect(html string, kind shuku.PageKind) shuku.GateState {
	return d.DetectFn(html, kind)
}

// ListExtractor is a mock implementation of shuku.ListExtractor.
type ListExtractor struct {
	ExtractFn func(html string) ([]*shuku.ListingEntry, error)
}

func (e *ListExtractor) Extract(html string) ([]*shuku.ListingEntry, error) {
	return e.ExtractFn(html)
}

// DetailExtractor is a mock implementation of shuku.DetailExtractor.
type DetailExtractor struct {
	ExtractFn func(html string, path string) (*shuku.Work, error)
}

func (e *DetailExtractor) Extract(html string, path string) (*shuku.Work, error) {
	return e.ExtractFn(html, path)
}

// ContentSanitizer is a mock implementation of shuku.ContentSanitizer.
type ContentSanitizer struct {
	SanitizeFn func(html string) (string, shuku.GateState, error)
}

func (s *ContentSanitizer) Sanitize(html string) (string, shuku.GateState, error) {
	return s.SanitizeFn(html)
}

// CommentExtractor is a mock implementation of shuku.CommentExtractor.
type CommentExtractor struct {
	ExtractFn func(html string) ([]*shuku.Comment, error)
}

func (e *CommentExtractor) Extract(html string) ([]*shuku.Comment, error) {
	return e.ExtractFn(html)
}
