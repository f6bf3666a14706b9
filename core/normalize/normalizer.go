// Package normalize implements the Normalizer interface.
// It converts the fetched material page into Markdown so the readable part
// of the source (references, comments, conditions) is kept next to the
// extracted data.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts an HTML page into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// Snapshot prefixes the page Markdown with its provenance.
func Snapshot(sourceURL, fetchedAt, markdown string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- source: %s -->\n", sourceURL)
	fmt.Fprintf(&b, "<!-- fetched_at: %s -->\n\n", fetchedAt)
	b.WriteString(strings.TrimSpace(markdown))
	b.WriteString("\n")
	return []byte(b.String())
}
