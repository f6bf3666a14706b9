// Package source holds helpers for the material page URL: validation and
// the material label used to name output files.
package source

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultURL is the page processed when no URL is given.
const DefaultURL = "https://refractiveindex.info/?shelf=main&book=Ta2O5&page=Bright-amorphous"

// ErrNoMaterial is returned when the URL has no second query segment.
var ErrNoMaterial = errors.New("no material in URL")

// Validate checks that rawURL is an absolute http(s) URL.
func Validate(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://refractiveindex.info)", rawURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}
	return nil
}

// Material returns the value of the second '&'-separated query segment,
// e.g. "Ta2O5" for ?shelf=main&book=Ta2O5&page=Bright-amorphous.
// The URL is not otherwise validated.
func Material(rawURL string) (string, error) {
	segments := strings.Split(rawURL, "&")
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %s", ErrNoMaterial, rawURL)
	}
	tokens := strings.Split(segments[1], "=")
	if len(tokens) < 2 || tokens[1] == "" {
		return "", fmt.Errorf("%w: %s", ErrNoMaterial, rawURL)
	}
	return tokens[1], nil
}

// Sanitize replaces characters that are unsafe in file names with
// underscores.
func Sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '-' || ch == '.' || ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
