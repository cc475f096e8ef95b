package shuku

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms sanitized reading content into Markdown.
	Convert(html string) (string, error)
}
