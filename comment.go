package shuku

// AnonymousAuthor is used for comments without an author name.
const AnonymousAuthor = "Anonymous"

// Comment represents one entry of a work's discussion section.
type Comment struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Date    string `json:"date,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// CommentExtractor parses the discussion section of a detail page.
// Pages without a discussion section yield an empty slice.
type CommentExtractor interface {
	Extract(html string) ([]*Comment, error)
}
