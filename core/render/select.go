package render

import (
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/core"
)

// ForFormat returns the renderer registered for a format name.
func ForFormat(format string) (core.Renderer, error) {
	switch format {
	case "dat":
		return NewDatRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "xlsx":
		return NewXLSXRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no renderer for format %q", format)
	}
}

// ForFormats resolves several format names, keeping their order and
// dropping duplicates.
func ForFormats(formats []string) ([]core.Renderer, error) {
	seen := make(map[string]bool, len(formats))
	renderers := make([]core.Renderer, 0, len(formats))
	for _, f := range formats {
		if seen[f] {
			continue
		}
		seen[f] = true
		r, err := ForFormat(f)
		if err != nil {
			return nil, err
		}
		renderers = append(renderers, r)
	}
	return renderers, nil
}
