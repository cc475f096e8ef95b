package shuku

import "strings"

// UntitledName is the work name used when no title heading is found.
const UntitledName = "Untitled"

// Status describes the publication state of a work.
type Status string

// Status values recognized by the host.
const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Work represents the metadata of a single work parsed from its detail page.
type Work struct {
	Path      string     `json:"path"`
	Name      string     `json:"name"`
	Cover     string     `json:"cover"`
	Author    string     `json:"author,omitempty"`
	Status    Status     `json:"status"`
	Rating    *float64   `json:"rating,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Tags      string     `json:"tags,omitempty"` // Comma-joined
	WordCount *int       `json:"wordCount,omitempty"`
	Chapters  []*Chapter `json:"chapters"`
}

// TagList splits Tags back into individual tags.
func (w *Work) TagList() []string {
	if w.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(w.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Chapter represents one entry of a work's chapter list.
type Chapter struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Number   int    `json:"number"` // 1-based, document order
	Released string `json:"released,omitempty"`
}

// DetailExtractor parses a work's detail page.
// A page behind the login wall yields a placeholder Work with an empty
// chapter list, not an error.
type DetailExtractor interface {
	Extract(html string, path string) (*Work, error)
}
