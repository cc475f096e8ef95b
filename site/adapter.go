// Package site exposes the Shuku adapter's entry points: listing, detail,
// reading content, search and comments.
package site

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/shuku"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LoginEntryPath is the path of the synthetic entry shown in place of an
// empty listing for categories that need a signed-in session.
const LoginEntryPath = "/login"

// ListingPage is the result of a listing request.
type ListingPage struct {
	Entries []*shuku.ListingEntry
	Plan    Plan

	// Schema holds the filter inputs refreshed from the tag vocabulary.
	Schema *shuku.FilterSchema
}

// Adapter serves the host's requests by fetching pages and handing them to
// the extractors. Each call is independent; the Adapter holds no state
// beyond its collaborators.
type Adapter struct {
	Site             shuku.Site
	Fetcher          shuku.Fetcher
	ListExtractor    shuku.ListExtractor
	DetailExtractor  shuku.DetailExtractor
	ContentSanitizer shuku.ContentSanitizer
	CommentExtractor shuku.CommentExtractor
	Vocabulary       shuku.TagVocabulary // Optional
	Logger           *slog.Logger        // Optional
}

func (a *Adapter) logger(op string) *slog.Logger {
	l := a.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return l.With("op", op, "call", uuid.NewString())
}

// fetchText returns the page body, or an empty string when the transport
// failed. Callers decide whether no content is an error.
func (a *Adapter) fetchText(ctx context.Context, log *slog.Logger, url string) string {
	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		log.Debug("fetch failed", "url", url, "err", err)
		return ""
	}
	return html
}

func (a *Adapter) fetchEntries(ctx context.Context, log *slog.Logger, url string) ([]*shuku.ListingEntry, error) {
	html := a.fetchText(ctx, log, url)
	if html == "" {
		return nil, shuku.Errorf(shuku.EUNAVAILABLE, "could not load %s", url)
	}
	return a.ListExtractor.Extract(html)
}

// Listing returns one page of works for filter.
func (a *Adapter) Listing(ctx context.Context, page int, filter shuku.Filter) (*ListingPage, error) {
	if page < 1 {
		return nil, shuku.Errorf(shuku.EINVALID, "page must be at least 1, got %d", page)
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	log := a.logger("listing")
	schema := a.filterSchema(ctx, log)

	plan := Reconcile(page, filter)
	log.Debug("listing plan", "plan", plan.Kind.String(), "page", page, "tags", plan.Tags)

	entries, err := a.execute(ctx, log, plan)
	if err != nil {
		return nil, err
	}
	return &ListingPage{Entries: entries, Plan: plan, Schema: schema}, nil
}

func (a *Adapter) execute(ctx context.Context, log *slog.Logger, plan Plan) ([]*shuku.ListingEntry, error) {
	switch plan.Kind {
	case PlanListing:
		entries, err := a.fetchEntries(ctx, log, a.Site.ListingURL(plan.Category, plan.Sort, plan.Page))
		if err != nil {
			return nil, err
		}
		// The site serves gated categories as an empty list.
		if len(entries) == 0 && plan.Category != shuku.CategoryOriginal {
			log.Debug("empty gated category", "category", plan.Category)
			return []*shuku.ListingEntry{loginEntry(plan.Category)}, nil
		}
		return entries, nil

	case PlanTag:
		return a.fetchEntries(ctx, log, a.Site.TagURL(plan.Tags[0], plan.Page))

	case PlanTagIntersect:
		tagged, err := a.fetchEntries(ctx, log, a.Site.TagURL(plan.Tags[0], plan.Page))
		if err != nil {
			return nil, err
		}
		listed, err := a.fetchEntries(ctx, log, a.Site.ListingURL(plan.Category, plan.Sort, plan.Page))
		if err != nil {
			return nil, err
		}
		return shuku.IntersectEntries(tagged, listed), nil

	case PlanMultiTag:
		results := make([][]*shuku.ListingEntry, len(plan.Tags))
		g, gctx := errgroup.WithContext(ctx)
		for i, tag := range plan.Tags {
			g.Go(func() error {
				entries, err := a.fetchEntries(gctx, log, a.Site.TagURL(tag, 1))
				if err != nil {
					return err
				}
				results[i] = entries
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return shuku.IntersectEntries(results[0], results[1:]...), nil
	}

	return []*shuku.ListingEntry{}, nil
}

func loginEntry(category shuku.Category) *shuku.ListingEntry {
	return &shuku.ListingEntry{
		Name:  "Log in to Shuku in the browser to browse the " + string(category) + " category",
		Path:  LoginEntryPath,
		Cover: shuku.PlaceholderCover,
	}
}

// FilterSchema returns the filter inputs with tag options from the
// vocabulary. Vocabulary failures leave the tag options empty.
func (a *Adapter) FilterSchema(ctx context.Context) *shuku.FilterSchema {
	return a.filterSchema(ctx, a.logger("filter_schema"))
}

func (a *Adapter) filterSchema(ctx context.Context, log *slog.Logger) *shuku.FilterSchema {
	schema := &shuku.FilterSchema{
		Version:    shuku.FilterVersion,
		Categories: shuku.Categories,
		Sorts:      shuku.SortOrders,
		Tags:       []shuku.FilterOption{},
	}
	if a.Vocabulary == nil {
		return schema
	}
	opts, err := a.Vocabulary.Options(ctx)
	if err != nil {
		log.Warn("tag vocabulary unavailable", "err", err)
		return schema
	}
	schema.Tags = opts
	return schema
}

// Detail returns the metadata and chapter list of the work at path, and
// records its tags in the vocabulary.
func (a *Adapter) Detail(ctx context.Context, path string) (*shuku.Work, error) {
	path, err := a.sitePath(path)
	if err != nil {
		return nil, err
	}

	log := a.logger("detail")
	html := a.fetchText(ctx, log, a.Site.URL(path))
	if html == "" {
		return nil, shuku.Errorf(shuku.EUNAVAILABLE, "could not load work %s", path)
	}

	work, err := a.DetailExtractor.Extract(html, path)
	if err != nil {
		return nil, err
	}

	if tags := work.TagList(); len(tags) > 0 && a.Vocabulary != nil {
		added, err := a.Vocabulary.Merge(ctx, tags)
		if err != nil {
			log.Warn("tag vocabulary not updated", "path", path, "err", err)
		} else if added > 0 {
			log.Debug("tag vocabulary updated", "path", path, "added", added)
		}
	}
	return work, nil
}

// Content returns the sanitized reading content of the chapter at path.
// Walled or missing chapters return a fixed explanatory fragment.
func (a *Adapter) Content(ctx context.Context, path string) (string, error) {
	path, err := a.sitePath(path)
	if err != nil {
		return "", err
	}

	log := a.logger("content")
	html := a.fetchText(ctx, log, a.Site.URL(path))
	if html == "" {
		return shuku.NotFoundContent, nil
	}

	content, state, err := a.ContentSanitizer.Sanitize(html)
	if err != nil {
		return "", err
	}
	if state != shuku.GateNormal {
		log.Info("chapter walled", "path", path, "gate", state.String())
	}
	return content, nil
}

// Search returns one page of works matching term. Transport and parse
// failures yield an empty result.
func (a *Adapter) Search(ctx context.Context, term string, page int) ([]*shuku.ListingEntry, error) {
	if page < 1 {
		return nil, shuku.Errorf(shuku.EINVALID, "page must be at least 1, got %d", page)
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return []*shuku.ListingEntry{}, nil
	}

	log := a.logger("search")
	html := a.fetchText(ctx, log, a.Site.SearchURL(term, page))
	if html == "" {
		return []*shuku.ListingEntry{}, nil
	}
	entries, err := a.ListExtractor.Extract(html)
	if err != nil {
		log.Debug("search results not parsed", "err", err)
		return []*shuku.ListingEntry{}, nil
	}
	return entries, nil
}

// Comments returns the discussion of the work at path. Transport and
// parse failures yield an empty result.
func (a *Adapter) Comments(ctx context.Context, path string) ([]*shuku.Comment, error) {
	path, err := a.sitePath(path)
	if err != nil {
		return nil, err
	}

	log := a.logger("comments")
	html := a.fetchText(ctx, log, a.Site.URL(path))
	if html == "" {
		return []*shuku.Comment{}, nil
	}
	comments, err := a.CommentExtractor.Extract(html)
	if err != nil {
		log.Debug("comments not parsed", "err", err)
		return []*shuku.Comment{}, nil
	}
	return comments, nil
}

// sitePath normalizes a path or site URL to a site-relative path.
func (a *Adapter) sitePath(path string) (string, error) {
	rel := a.Site.RelativePath(path)
	if rel == "" || !strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, "//") {
		return "", shuku.Errorf(shuku.EINVALID, "invalid work path %q", path)
	}
	return rel, nil
}
