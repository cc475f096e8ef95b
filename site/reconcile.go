package site

import (
	"github.com/fwojciec/shuku"
)

// PlanKind identifies how a listing request is served.
type PlanKind int

// Plan kinds.
const (
	// PlanListing fetches the category/sort listing page.
	PlanListing PlanKind = iota

	// PlanTag fetches the tag page directly.
	PlanTag

	// PlanTagIntersect fetches the tag page and the listing page for the
	// same page number and keeps tag entries also on the listing page.
	PlanTagIntersect

	// PlanMultiTag fetches page 1 of every tag concurrently and keeps
	// entries present on all of them.
	PlanMultiTag

	// PlanEmpty returns no entries without fetching anything.
	PlanEmpty
)

// String returns a short name for the plan kind, used in logs.
func (k PlanKind) String() string {
	switch k {
	case PlanListing:
		return "listing"
	case PlanTag:
		return "tag"
	case PlanTagIntersect:
		return "tag_intersect"
	case PlanMultiTag:
		return "multi_tag"
	case PlanEmpty:
		return "empty"
	}
	return "unknown"
}

// Plan is the page-fetch plan for one listing request.
type Plan struct {
	Kind     PlanKind
	Page     int
	Category shuku.Category
	Sort     shuku.SortOrder
	Tags     []string
}

// Reconcile turns a page number and filter into a fetch plan.
// The site's tag pages ignore category and sort, so combining a tag with
// a non-default listing is emulated by intersecting two result pages.
// Intersections across several tags only exist for page 1.
func Reconcile(page int, filter shuku.Filter) Plan {
	plan := Plan{
		Page:     page,
		Category: filter.CategoryOrDefault(),
		Sort:     filter.SortOrDefault(),
		Tags:     filter.SelectedTags(),
	}

	switch {
	case len(plan.Tags) == 0:
		plan.Kind = PlanListing
	case len(plan.Tags) == 1 && filter.HasDefaultListing():
		plan.Kind = PlanTag
	case len(plan.Tags) == 1:
		plan.Kind = PlanTagIntersect
	case page > 1:
		plan.Kind = PlanEmpty
	default:
		plan.Kind = PlanMultiTag
	}
	return plan
}
