package textmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textmesh package.
var (
	// ErrInvalidSubdivision is returned when a style requests fewer than
	// one curve subdivision. This is a structural error and fails the
	// whole build.
	ErrInvalidSubdivision = errors.New("textmesh: subdivision must be at least 1")

	// ErrDegeneratePolygon is returned by the triangulator when the outer
	// contour has fewer than 3 distinct points or zero signed area.
	ErrDegeneratePolygon = errors.New("textmesh: degenerate polygon")

	// ErrMissingGlyph indicates a character has no outline in the font.
	ErrMissingGlyph = errors.New("textmesh: glyph not in font")

	// ErrNilSource is returned when Build is called without an outline source.
	ErrNilSource = errors.New("textmesh: nil outline source")
)

// Warning records a per-glyph problem that did not abort the build.
// One bad character never fails a whole string; it is skipped and
// reported here instead.
type Warning struct {
	// Rune is the character that could not be built.
	Rune rune

	// Index is the rune index within the (normalized) input text.
	Index int

	// Err is the underlying cause, e.g. ErrMissingGlyph or
	// ErrDegeneratePolygon.
	Err error
}

func (w Warning) Error() string {
	return fmt.Sprintf("textmesh: glyph %q at index %d: %v", w.Rune, w.Index, w.Err)
}

// Unwrap returns the underlying cause so errors.Is works on warnings.
func (w Warning) Unwrap() error {
	return w.Err
}
