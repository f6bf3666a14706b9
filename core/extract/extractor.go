// Package extract implements the Extractor interface.
// It walks every text node of a page, including script bodies, and keeps
// the ones containing a marker string. Material pages carry their data
// arrays inside an inline script, so no element is treated as noise.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultMarker identifies the script block holding the n/k arrays.
const DefaultMarker = "data_n_wl"

// MarkerExtractor returns text nodes that contain Marker.
type MarkerExtractor struct {
	Marker string
}

// New creates a MarkerExtractor. An empty marker falls back to DefaultMarker.
func New(marker string) *MarkerExtractor {
	if marker == "" {
		marker = DefaultMarker
	}
	return &MarkerExtractor{Marker: marker}
}

// Extract parses html and returns the matching text nodes in document
// order. A page without matches yields an empty slice and no error.
func (e *MarkerExtractor) Extract(page string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	blocks := []string{}
	e.collect(doc.Selection, &blocks)
	return blocks, nil
}

// collect descends depth-first so matches come out in document order.
func (e *MarkerExtractor) collect(sel *goquery.Selection, blocks *[]string) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node.Type == html.TextNode {
			if strings.Contains(node.Data, e.Marker) {
				*blocks = append(*blocks, node.Data)
			}
			return
		}
		e.collect(s, blocks)
	})
}
