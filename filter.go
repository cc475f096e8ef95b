package shuku

import (
	"strings"
	"unicode"
)

// FilterVersion is the current version of the Filter value type.
// Version 1 carried free-text tags, version 2 multi-select tags and
// version 3 a single tag picked from the vocabulary.
const FilterVersion = 3

// Category selects a listing section.
type Category string

// Listing categories. CategoryOriginal is public; the others may require a
// signed-in session.
const (
	CategoryOriginal  Category = "original"
	CategoryFanfic    Category = "fanfic"
	CategoryAdult     Category = "adult"
	CategoryFollowing Category = "following"
)

// SortOrder selects the listing order.
type SortOrder string

// Listing sort orders.
const (
	SortLatest  SortOrder = "latest"
	SortPopular SortOrder = "popular"
	SortRating  SortOrder = "rating"
	SortWords   SortOrder = "words"
)

// Filter defaults.
const (
	DefaultCategory = CategoryOriginal
	DefaultSort     = SortLatest
)

// Categories lists the selectable categories in display order.
var Categories = []FilterOption{
	{Label: "原创", Value: string(CategoryOriginal)},
	{Label: "同人", Value: string(CategoryFanfic)},
	{Label: "成人", Value: string(CategoryAdult)},
	{Label: "关注", Value: string(CategoryFollowing)},
}

// SortOrders lists the selectable sort orders in display order.
var SortOrders = []FilterOption{
	{Label: "最新", Value: string(SortLatest)},
	{Label: "最热", Value: string(SortPopular)},
	{Label: "评分", Value: string(SortRating)},
	{Label: "字数", Value: string(SortWords)},
}

// FilterOption is one selectable value of a filter input.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FilterSchema describes the filter inputs the host should render.
type FilterSchema struct {
	Version    int            `json:"version"`
	Categories []FilterOption `json:"categories"`
	Sorts      []FilterOption `json:"sorts"`
	Tags       []FilterOption `json:"tags"`
}

// Filter is the listing filter selected by the user. It is a plain value
// passed into each listing call; the adapter never mutates it.
type Filter struct {
	Version  int       `json:"version"`
	Category Category  `json:"category"`
	Sort     SortOrder `json:"sort"`
	Tags     TagInput  `json:"-"`
}

// DefaultFilter returns a filter with default category and sort and no tags.
func DefaultFilter() Filter {
	return Filter{
		Version:  FilterVersion,
		Category: DefaultCategory,
		Sort:     DefaultSort,
	}
}

// Validate returns an error if the filter contains unknown values.
// Empty category and sort are valid and mean the defaults.
func (f Filter) Validate() error {
	if f.Version > FilterVersion {
		return Errorf(EINVALID, "unsupported filter version %d", f.Version)
	}
	if f.Category != "" && !hasOption(Categories, string(f.Category)) {
		return Errorf(EINVALID, "unknown category %q", f.Category)
	}
	if f.Sort != "" && !hasOption(SortOrders, string(f.Sort)) {
		return Errorf(EINVALID, "unknown sort order %q", f.Sort)
	}
	return nil
}

// CategoryOrDefault returns the selected category, or DefaultCategory.
func (f Filter) CategoryOrDefault() Category {
	if f.Category == "" {
		return DefaultCategory
	}
	return f.Category
}

// SortOrDefault returns the selected sort order, or DefaultSort.
func (f Filter) SortOrDefault() SortOrder {
	if f.Sort == "" {
		return DefaultSort
	}
	return f.Sort
}

// HasDefaultListing reports whether both category and sort are at their
// defaults.
func (f Filter) HasDefaultListing() bool {
	return f.CategoryOrDefault() == DefaultCategory && f.SortOrDefault() == DefaultSort
}

// SelectedTags returns the selected tags regardless of the input shape.
func (f Filter) SelectedTags() []string {
	if f.Tags == nil {
		return nil
	}
	return f.Tags.Selected()
}

func hasOption(opts []FilterOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// TagInput is the tag selection produced by one of the filter UI shapes.
// The set of implementations is closed: TagText, TagChecks and TagSingle.
type TagInput interface {
	// Selected returns trimmed, deduplicated, non-empty tags in input order.
	Selected() []string

	tagInput()
}

// TagText is a free-text tag field. Tags are separated by commas
// (ASCII or full-width) or whitespace.
type TagText struct {
	Text string
}

// Selected implements TagInput.
func (t TagText) Selected() []string {
	fields := strings.FieldsFunc(t.Text, func(r rune) bool {
		return r == ',' || r == '，' || r == '、' || unicode.IsSpace(r)
	})
	return cleanTags(fields)
}

func (TagText) tagInput() {}

// TagChecks is a multi-select checkbox group.
type TagChecks struct {
	Values []string
}

// Selected implements TagInput.
func (t TagChecks) Selected() []string {
	return cleanTags(t.Values)
}

func (TagChecks) tagInput() {}

// TagSingle is a single-select autocomplete backed by the tag vocabulary.
type TagSingle struct {
	Value string
}

// Selected implements TagInput.
func (t TagSingle) Selected() []string {
	return cleanTags([]string{t.Value})
}

func (TagSingle) tagInput() {}

func cleanTags(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
