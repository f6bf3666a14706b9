package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLayout is returned when the marker blocks do not have the expected shape.
var ErrLayout = errors.New("unexpected block layout")

// Layout names the whitespace-token offsets of the four array literals
// inside the first marker block.
type Layout struct {
	NWavelength int `toml:"n_wavelength"`
	KWavelength int `toml:"k_wavelength"`
	N           int `toml:"n"`
	K           int `toml:"k"`
}

// DefaultLayout matches the script block emitted by refractiveindex.info.
func DefaultLayout() Layout {
	return Layout{NWavelength: 4, KWavelength: 5, N: 6, K: 7}
}

// Fields holds the four raw literals picked out by a Layout.
type Fields struct {
	NWavelength string
	KWavelength string
	N           string
	K           string
}

// Validate checks that all offsets are non-negative and distinct.
func (l Layout) Validate() error {
	offsets := []int{l.NWavelength, l.KWavelength, l.N, l.K}
	seen := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		if o < 0 {
			return fmt.Errorf("layout offset %d is negative", o)
		}
		if seen[o] {
			return fmt.Errorf("layout offset %d used twice", o)
		}
		seen[o] = true
	}
	return nil
}

func (l Layout) maxOffset() int {
	return max(l.NWavelength, l.KWavelength, l.N, l.K)
}

// Extract reads the four literals from the first block. The blocks slice
// is left untouched.
func (l Layout) Extract(blocks []string) (Fields, error) {
	if len(blocks) == 0 {
		return Fields{}, fmt.Errorf("%w: no marker blocks", ErrLayout)
	}

	tokens := strings.Fields(blocks[0])
	if len(tokens) <= l.maxOffset() {
		return Fields{}, fmt.Errorf("%w: first block has %d tokens, need %d",
			ErrLayout, len(tokens), l.maxOffset()+1)
	}

	return Fields{
		NWavelength: tokens[l.NWavelength],
		KWavelength: tokens[l.KWavelength],
		N:           tokens[l.N],
		K:           tokens[l.K],
	}, nil
}
