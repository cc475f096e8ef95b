package shuku

// PlaceholderCover is the image reference used whenever a listing card or
// detail page has no usable cover.
const PlaceholderCover = "https://www.shuku.example/static/img/placeholder-cover.png"

// ListingEntry represents one row of a paginated browse or search result.
type ListingEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`  // Site-relative, e.g. /book/123
	Cover string `json:"cover"` // Absolute URL or PlaceholderCover
	Badge string `json:"badge,omitempty"`
	Info  string `json:"info,omitempty"` // Rating/word-count summary
}

// ListExtractor parses a listing page into entries in document order.
// Cards missing a detail link are skipped rather than failing the page.
type ListExtractor interface {
	Extract(html string) ([]*ListingEntry, error)
}

// IntersectEntries returns the entries of base whose Path appears in every
// one of others, preserving the order of base.
func IntersectEntries(base []*ListingEntry, others ...[]*ListingEntry) []*ListingEntry {
	result := []*ListingEntry{}
	for _, e := range base {
		keep := true
		for _, other := range others {
			if !containsPath(other, e.Path) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, e)
		}
	}
	return result
}

func containsPath(entries []*ListingEntry, path string) bool {
	for _, e := range entries {
		if e.Path == path {
			return true
		}
	}
	return false
}
