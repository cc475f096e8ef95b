package shuku

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the site's declared base URL.
const DefaultBaseURL = "https://www.shuku.example"

// CanonicalHost is the literal host the site also serves from, with or
// without a subdomain (www., m.).
const CanonicalHost = "shuku.example"

// Site describes where the site is served from and builds its page URLs.
type Site struct {
	// BaseURL is the scheme and host page URLs are built on.
	BaseURL string

	// Hosts lists extra host names whose absolute links are treated as
	// belonging to the site.
	Hosts []string
}

// DefaultSite returns a Site for DefaultBaseURL.
func DefaultSite() Site {
	return Site{BaseURL: DefaultBaseURL}
}

func (s Site) base() string {
	if s.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(s.BaseURL, "/")
}

// URL returns the absolute URL for a site-relative path.
func (s Site) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.base() + path
}

// ListingURL returns the category listing URL for a page.
func (s Site) ListingURL(category Category, sort SortOrder, page int) string {
	q := url.Values{}
	q.Set("category", string(category))
	q.Set("sort", string(sort))
	q.Set("page", strconv.Itoa(page))
	return s.base() + "/books?" + q.Encode()
}

// TagURL returns the tag listing URL for a page.
func (s Site) TagURL(tag string, page int) string {
	return s.base() + "/tag/" + url.PathEscape(tag) + "?page=" + strconv.Itoa(page)
}

// SearchURL returns the search results URL for a page.
func (s Site) SearchURL(term string, page int) string {
	q := url.Values{}
	q.Set("q", term)
	q.Set("page", strconv.Itoa(page))
	return s.base() + "/search?" + q.Encode()
}

// OwnsHost reports whether host belongs to the site, either as the
// declared base URL host, one of Hosts, or the canonical host.
func (s Site) OwnsHost(host string) bool {
	host = strings.ToLower(host)
	if host == "" {
		return false
	}
	if u, err := url.Parse(s.base()); err == nil && strings.EqualFold(u.Hostname(), host) {
		return true
	}
	for _, h := range s.Hosts {
		if strings.EqualFold(h, host) {
			return true
		}
	}
	return host == CanonicalHost || strings.HasSuffix(host, "."+CanonicalHost)
}

// RelativePath rewrites a link target to a site-relative path.
// Absolute and protocol-relative links to the site lose their scheme and
// host; links to other hosts are returned unchanged. Fragments are dropped.
// Returns an empty string for empty or non-HTTP targets.
func (s Site) RelativePath(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host != "" {
		if !s.OwnsHost(u.Hostname()) {
			return href
		}
		u.Scheme = ""
		u.Host = ""
		u.User = nil
	}
	u.Fragment = ""
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

// ResolveImage makes an image reference absolute. Site-root-relative
// references gain the base URL; absolute and protocol-relative ones pass
// through; other relative references resolve against the base URL.
// Returns an empty string for empty input.
func (s Site) ResolveImage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return s.base() + raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return raw
	}
	base, err := url.Parse(s.base() + "/")
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
