package shopgrep

import "time"

// Document is the text capture of one page-equivalent unit, as produced by
// a crawling collaborator (rendered to markdown-like text, not HTML). It is
// immutable once produced and consumed exactly once by the pipeline.
type Document struct {
	SourceURL string    `json:"sourceUrl"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}
