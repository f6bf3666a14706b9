// Package parse turns the raw text blocks found on a material page into
// numeric sequences.
//
// A page embeds its data as JavaScript-like assignments such as
//
//	data_n_wl=[0.3,0.31,0.32]
//
// and the four assignments of interest sit at fixed token offsets within
// the first matching text block (see Layout).
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/nkpipe/internal/diag"
)

// ErrMalformed is returned when a fragment is not a name=[numbers] literal.
var ErrMalformed = errors.New("malformed array literal")

// ParseArray parses a fragment of the form name=[v1,v2,...] into its values
// in literal order. Conversion is all-or-nothing: if any element fails to
// parse, ParseArray returns nil and an error wrapping ErrMalformed.
// Empty or whitespace-only brackets yield an empty slice and no error.
func ParseArray(fragment string) ([]float64, error) {
	return ParseArrayTraced(fragment, nil)
}

// ParseArrayTraced is ParseArray with the intermediate split results
// written to r as trace lines.
func ParseArrayTraced(fragment string, r *diag.Reporter) ([]float64, error) {
	name, rest, ok := strings.Cut(fragment, "=")
	if !ok {
		return nil, fmt.Errorf("%w: missing '=' in %q", ErrMalformed, truncate(fragment))
	}
	r.Trace("Accessing variable %s", strings.TrimSpace(name))

	// Only the text up to a second '=' belongs to this assignment.
	rest, _, _ = strings.Cut(rest, "=")

	_, body, ok := strings.Cut(rest, "[")
	if !ok {
		return nil, fmt.Errorf("%w: missing '[' after %s=", ErrMalformed, name)
	}
	body, _, ok = strings.Cut(body, "]")
	if !ok {
		return nil, fmt.Errorf("%w: missing ']' after %s=", ErrMalformed, name)
	}
	r.Trace("step1 %s", truncate(body))

	if strings.TrimSpace(body) == "" {
		r.Trace("step2 []")
		return []float64{}, nil
	}

	tokens := strings.Split(body, ",")
	r.Trace("step2 %d tokens", len(tokens))

	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			r.Trace("step3 []")
			return nil, fmt.Errorf("%w: %s element %d (%q)", ErrMalformed, name, i, tok)
		}
		values = append(values, v)
	}
	r.Trace("step3 %d values", len(values))

	return values, nil
}

// truncate shortens long fragments for error and trace messages.
func truncate(s string) string {
	const limit = 80
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
