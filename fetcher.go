package shuku

import "context"

// Fetcher retrieves raw page text from URLs.
type Fetcher interface {
	// Fetch returns the page body. Callers treat an error and an empty
	// body the same way: no content.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
