package shopgrep

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g., from an Extractor). Links and images must survive
	// the conversion: the field extractor mines them.
	Convert(html string) (string, error)
}
