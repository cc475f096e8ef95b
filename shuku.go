// Package shuku adapts the Shuku web-fiction site to a stable reader model.
// It fetches listing, detail and reading pages, detects access walls,
// and normalizes the site's markup into listing entries, work metadata,
// chapters, sanitized reading content and comments.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package shuku
